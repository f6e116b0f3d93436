package get_place

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurnIt/internal/api/handlers"
	"github.com/m04kA/TurnIt/internal/service/places"
)

const (
	msgInvalidPlaceID = "ID de lugar inválido"
	msgPlaceNotFound  = "lugar no encontrado"
)

type Handler struct {
	service PlaceService
	logger  Logger
}

func NewHandler(service PlaceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/places/{placeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	placeID, err := handlers.PathInt64(r, "placeId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPlaceID)
		return
	}

	result, err := h.service.GetByID(r.Context(), placeID)
	if err != nil {
		if errors.Is(err, places.ErrPlaceNotFound) {
			handlers.RespondNotFound(w, msgPlaceNotFound)
			return
		}
		h.logger.Error("GET /places/{placeId} - Failed to get place: place_id=%d, error=%v", placeID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
