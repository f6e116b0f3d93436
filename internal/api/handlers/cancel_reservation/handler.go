package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurnIt/internal/api/handlers"
	"github.com/m04kA/TurnIt/internal/api/middleware"
	cancelReservation "github.com/m04kA/TurnIt/internal/usecase/cancel_reservation"
)

const (
	msgUnauthorized   = "se requiere autenticación"
	msgInvalidTurnoID = "ID de turno inválido"
	msgTurnoNotFound  = "turno no encontrado"
	msgNotReserved    = "no tienes una reserva en este turno"
)

type Handler struct {
	useCase CancelReservationUseCase
	logger  Logger
}

func NewHandler(useCase CancelReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/turnos/{turnoId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	turnoID, err := handlers.PathInt64(r, "turnoId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTurnoID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelReservation.Request{UserID: userID, TurnoID: turnoID})
	if err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrTurnoNotFound):
			handlers.RespondNotFound(w, msgTurnoNotFound)
		case errors.Is(err, cancelReservation.ErrNotReserved):
			h.logger.Warn("DELETE /turnos/{turnoId}/reservations - Not reserved: user_id=%s, turno_id=%d", userID, turnoID)
			handlers.RespondNotFound(w, msgNotReserved)
		case errors.Is(err, cancelReservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidTurnoID)
		default:
			h.logger.Error("DELETE /turnos/{turnoId}/reservations - Failed to cancel: user_id=%s, turno_id=%d, error=%v", userID, turnoID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /turnos/{turnoId}/reservations - Cancelled: user_id=%s, turno_id=%d, slots_available=%d",
		userID, turnoID, result.SlotsAvailable)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
