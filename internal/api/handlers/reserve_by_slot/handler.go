package reserve_by_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurnIt/internal/api/handlers"
	reserveHandler "github.com/m04kA/TurnIt/internal/api/handlers/reserve_turno"
	"github.com/m04kA/TurnIt/internal/api/middleware"
	"github.com/m04kA/TurnIt/pkg/types"
)

const (
	msgUnauthorized       = "se requiere autenticación"
	msgInvalidPlaceID     = "ID de lugar inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidDate        = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidTime        = "formato de hora inválido, se espera HH:MM"
)

var errInvalidDate = errors.New("invalid date")

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

// Handle POST /api/v1/places/{placeId}/reservations
// Резервирует место в турно заведения на указанные дату и время
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	placeID, err := handlers.PathInt64(r, "placeId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPlaceID)
		return
	}

	var req ReserveBySlotRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /places/{placeId}/reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, placeID)
	if err != nil {
		if errors.Is(err, types.ErrInvalidTimeString) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if reserveHandler.RespondUseCaseError(w, err) {
			h.logger.Warn("POST /places/{placeId}/reservations - Rejected: user_id=%s, place_id=%d, date=%s, time=%s, reason=%v",
				userID, placeID, req.Date, req.Time, err)
			return
		}
		h.logger.Error("POST /places/{placeId}/reservations - Failed to reserve: user_id=%s, place_id=%d, error=%v", userID, placeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /places/{placeId}/reservations - Reserved: user_id=%s, turno_id=%d", userID, result.TurnoID)
	handlers.RespondJSON(w, http.StatusCreated, reserveHandler.FromUseCaseResponse(result))
}
