package publish_turno

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurnIt/internal/api/handlers"
	"github.com/m04kA/TurnIt/internal/api/middleware"
	publishTurno "github.com/m04kA/TurnIt/internal/usecase/publish_turno"
	"github.com/m04kA/TurnIt/pkg/types"
)

const (
	msgUnauthorized       = "se requiere autenticación"
	msgInvalidPlaceID     = "ID de lugar inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidDate        = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidTime        = "formato de hora inválido, se espera HH:MM"
	msgInvalidCapacity    = "la capacidad debe estar entre 1 y 500"
	msgDateInPast         = "la fecha y hora del turno ya pasaron"
	msgPlaceNotFound      = "lugar no encontrado"
	msgAccessDenied       = "solo el dueño o el personal del lugar pueden publicar turnos"
	msgDuplicateTurno     = "ya existe un turno publicado para esa fecha y hora"
	msgInvalidInput       = "datos del turno inválidos"
)

var errInvalidDate = errors.New("invalid date")

type Handler struct {
	useCase PublishTurnoUseCase
	logger  Logger
}

func NewHandler(useCase PublishTurnoUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/places/{placeId}/turnos
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

	var req PublishTurnoRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /places/{placeId}/turnos - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, placeID)
	if err != nil {
		h.logger.Warn("POST /places/{placeId}/turnos - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeString) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, publishTurno.ErrInvalidCapacity):
			handlers.RespondBadRequest(w, msgInvalidCapacity)
		case errors.Is(err, publishTurno.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)
		case errors.Is(err, publishTurno.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, publishTurno.ErrPlaceNotFound):
			handlers.RespondNotFound(w, msgPlaceNotFound)
		case errors.Is(err, publishTurno.ErrAccessDenied):
			h.logger.Warn("POST /places/{placeId}/turnos - Access denied: user_id=%s, place_id=%d", userID, placeID)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, publishTurno.ErrDuplicateTurno):
			handlers.RespondConflict(w, msgDuplicateTurno)
		default:
			h.logger.Error("POST /places/{placeId}/turnos - Failed to publish turno: place_id=%d, error=%v", placeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /places/{placeId}/turnos - Turno published: turno_id=%d, place_id=%d", result.ID, placeID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
