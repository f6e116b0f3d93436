package get_user_reservations

import (
	"net/http"

	"github.com/m04kA/TurnIt/internal/api/handlers"
	"github.com/m04kA/TurnIt/internal/api/middleware"
)

const (
	msgUnauthorized = "se requiere autenticación"
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

// Handle GET /api/v1/users/me/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /users/me/reservations - Failed to list reservations: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/me/reservations - Reservations retrieved: user_id=%s, count=%d", userID, len(result.Turnos))
	handlers.RespondJSON(w, http.StatusOK, result)
}
