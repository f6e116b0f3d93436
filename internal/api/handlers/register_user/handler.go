package register_user

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/m04kA/TurnIt/internal/api/handlers"
	"github.com/m04kA/TurnIt/internal/api/middleware"
	"github.com/m04kA/TurnIt/internal/service/users"
	"github.com/m04kA/TurnIt/internal/service/users/models"
)

const (
	msgUnauthorized       = "se requiere autenticación"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgAlreadyRegistered  = "el usuario ya está registrado"
	msgInvalidData        = "datos de registro inválidos"
	msgClaimsMismatch     = "el email o el rol no coinciden con el token"
)

var (
	errClaimsMismatch = errors.New("request body contradicts token claims")
	errMissingField   = errors.New("email and role are required")
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

// Handle POST /api/v1/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.RegisterUserRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: user_id=%s, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	if err := fillFromToken(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid registration data: user_id=%s, error=%v", userID, err)
		if errors.Is(err, errClaimsMismatch) {
			handlers.RespondBadRequest(w, msgClaimsMismatch)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidData)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserAlreadyExists):
			handlers.RespondConflict(w, msgAlreadyRegistered)
		case errors.Is(err, users.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidData)
		default:
			h.logger.Error("POST /users - Failed to register user: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - User registered: user_id=%s, role=%s", result.ID, result.Role)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// fillFromToken дополняет email и роль из claims токена
func fillFromToken(r *http.Request, req *models.RegisterUserRequest) error {
	email := middleware.GetEmail(r.Context())
	switch {
	case req.Email == "":
		req.Email = email
	case email != "" && !strings.EqualFold(strings.TrimSpace(req.Email), email):
		return fmt.Errorf("%w: email", errClaimsMismatch)
	}

	role := middleware.GetRole(r.Context())
	switch {
	case req.Role == "":
		req.Role = role
	case role != "" && req.Role != role:
		return fmt.Errorf("%w: role", errClaimsMismatch)
	}

	if req.Email == "" || req.Role == "" {
		return errMissingField
	}
	return nil
}
