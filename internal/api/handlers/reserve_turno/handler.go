package reserve_turno

import (
	"net/http"

	"github.com/m04kA/TurnIt/internal/api/handlers"
	"github.com/m04kA/TurnIt/internal/api/middleware"
	reserveTurno "github.com/m04kA/TurnIt/internal/usecase/reserve_turno"
)

const (
	msgUnauthorized   = "se requiere autenticación"
	msgInvalidTurnoID = "ID de turno inválido"
)

type Handler struct {
	useCase ReserveTurnoUseCase
	logger  Logger
}

func NewHandler(useCase ReserveTurnoUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/turnos/{turnoId}/reservations
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

	result, err := h.useCase.Execute(r.Context(), &reserveTurno.Request{UserID: userID, TurnoID: turnoID})
	if err != nil {
		if RespondUseCaseError(w, err) {
			h.logger.Warn("POST /turnos/{turnoId}/reservations - Rejected: user_id=%s, turno_id=%d, reason=%v", userID, turnoID, err)
			return
		}
		h.logger.Error("POST /turnos/{turnoId}/reservations - Failed to reserve: user_id=%s, turno_id=%d, error=%v", userID, turnoID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /turnos/{turnoId}/reservations - Reserved: user_id=%s, turno_id=%d, slots_available=%d",
		userID, turnoID, result.SlotsAvailable)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
