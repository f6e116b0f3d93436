package turnos_live

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
	places PlaceService
	feed   Feed
	logger Logger
}

func NewHandler(places PlaceService, feed Feed, logger Logger) *Handler {
	return &Handler{
		places: places,
		feed:   feed,
		logger: logger,
	}
}

// Handle GET /api/v1/places/{placeId}/turnos/live (websocket)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	placeID, err := handlers.PathInt64(r, "placeId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPlaceID)
		return
	}

	if _, err := h.places.GetByID(r.Context(), placeID); err != nil {
		if errors.Is(err, places.ErrPlaceNotFound) {
			handlers.RespondNotFound(w, msgPlaceNotFound)
			return
		}
		h.logger.Error("GET /places/{placeId}/turnos/live - Failed to get place: place_id=%d, error=%v", placeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.feed.ServeWS(w, r, placeID)
}
