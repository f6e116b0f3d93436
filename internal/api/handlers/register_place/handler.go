package register_place

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurnIt/internal/api/handlers"
	"github.com/m04kA/TurnIt/internal/api/middleware"
	"github.com/m04kA/TurnIt/internal/service/places"
	"github.com/m04kA/TurnIt/internal/service/places/models"
)

const (
	msgUnauthorized       = "se requiere autenticación"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidCategories  = "categorías inválidas"
	msgNotPlaceAccount    = "solo las cuentas de lugar pueden registrar lugares"
	msgUserNotFound       = "usuario no registrado"
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

// Handle POST /api/v1/places
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.RegisterPlaceRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /places - Invalid request body: user_id=%s, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, places.ErrNotPlaceAccount):
			handlers.RespondForbidden(w, msgNotPlaceAccount)
		case errors.Is(err, places.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)
		case errors.Is(err, places.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidCategories)
		default:
			h.logger.Error("POST /places - Failed to register place: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /places - Place registered: place_id=%d, owner=%s", result.ID, result.OwnerID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
