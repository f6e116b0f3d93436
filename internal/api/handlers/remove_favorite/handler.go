package remove_favorite

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurnIt/internal/api/handlers"
	"github.com/m04kA/TurnIt/internal/api/middleware"
	"github.com/m04kA/TurnIt/internal/service/users"
)

const (
	msgUnauthorized   = "se requiere autenticación"
	msgInvalidPlaceID = "ID de lugar inválido"
	msgUserNotFound   = "usuario no registrado"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/users/me/favorites/{placeId}
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

	if err := h.service.RemoveFavorite(r.Context(), userID, placeID); err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)
		case errors.Is(err, users.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPlaceID)
		default:
			h.logger.Error("DELETE /users/me/favorites/{placeId} - Failed: user_id=%s, place_id=%d, error=%v", userID, placeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondNoContent(w)
}
