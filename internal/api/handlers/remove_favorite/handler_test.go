package remove_favorite

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/TurnIt/internal/api/middleware"
	"github.com/m04kA/TurnIt/internal/service/users"
	"github.com/m04kA/TurnIt/pkg/logger"
)

type fakeService struct {
	err error
}

func (f fakeService) RemoveFavorite(ctx context.Context, userID string, placeID int64) error {
	return f.err
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		placeID string
		err     error
		status  int
	}{
		{name: "removed", userID: "ana", placeID: "7", status: http.StatusNoContent},
		{name: "anonymous", placeID: "7", status: http.StatusUnauthorized},
		{name: "bad place id", userID: "ana", placeID: "0", status: http.StatusBadRequest},
		{name: "unregistered user", userID: "ana", placeID: "7", err: users.ErrUserNotFound, status: http.StatusNotFound},
		{name: "invalid", userID: "ana", placeID: "7", err: users.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", userID: "ana", placeID: "7", err: users.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/me/favorites/"+tt.placeID, nil)
			req = mux.SetURLVars(req, map[string]string{"placeId": tt.placeID})
			if tt.userID != "" {
				req = req.WithContext(middleware.WithUserID(req.Context(), tt.userID))
			}
			w := httptest.NewRecorder()

			NewHandler(fakeService{err: tt.err}, logger.Nop()).Handle(w, req)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}
