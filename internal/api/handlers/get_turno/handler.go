package get_turno

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurnIt/internal/api/handlers"
	"github.com/m04kA/TurnIt/internal/api/middleware"
	"github.com/m04kA/TurnIt/internal/service/turnos"
)

const (
	msgInvalidTurnoID = "ID de turno inválido"
	msgTurnoNotFound  = "turno no encontrado"
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

// Handle GET /api/v1/turnos/{turnoId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	turnoID, err := handlers.PathInt64(r, "turnoId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTurnoID)
		return
	}

	viewerID, _ := middleware.GetUserID(r.Context())

	result, err := h.service.GetByID(r.Context(), turnoID, viewerID)
	if err != nil {
		if errors.Is(err, turnos.ErrTurnoNotFound) || errors.Is(err, turnos.ErrPlaceNotFound) {
			handlers.RespondNotFound(w, msgTurnoNotFound)
			return
		}
		h.logger.Error("GET /turnos/{turnoId} - Failed to get turno: turno_id=%d, error=%v", turnoID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
