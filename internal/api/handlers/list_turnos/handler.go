package list_turnos

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/TurnIt/internal/api/handlers"
	"github.com/m04kA/TurnIt/internal/api/middleware"
	"github.com/m04kA/TurnIt/internal/domain"
	"github.com/m04kA/TurnIt/internal/service/turnos"
	"github.com/m04kA/TurnIt/internal/service/turnos/models"
)

const (
	msgInvalidPlaceID   = "ID de lugar inválido"
	msgInvalidDate      = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidAvailable = "parámetro available inválido, se espera true o false"
	msgPlaceNotFound    = "lugar no encontrado"
)

type Handler struct {
	service TurnoService
	logger  Logger
}

func NewHandler(service TurnoService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/places/{placeId}/turnos?date=YYYY-MM-DD&available=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	placeID, err := handlers.PathInt64(r, "placeId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPlaceID)
		return
	}

	req := &models.ListTurnosRequest{PlaceID: placeID}
	req.ViewerID, _ = middleware.GetUserID(r.Context())

	query := r.URL.Query()
	if raw := query.Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}
	if raw := query.Get("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidAvailable)
			return
		}
		req.OnlyAvailable = available
	}

	result, err := h.service.ListByPlace(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, turnos.ErrPlaceNotFound):
			handlers.RespondNotFound(w, msgPlaceNotFound)
		case errors.Is(err, turnos.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPlaceID)
		default:
			h.logger.Error("GET /places/{placeId}/turnos - Failed to list turnos: place_id=%d, error=%v", placeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
