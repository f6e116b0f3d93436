package register_place

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurnIt/internal/api/middleware"
	"github.com/m04kA/TurnIt/internal/service/places"
	"github.com/m04kA/TurnIt/internal/service/places/models"
	"github.com/m04kA/TurnIt/pkg/logger"
)

const validBody = `{"name":"Barberia Centro","address":"Av. Corrientes 1234","categories":["barberia"]}`

type fakeService struct {
	err error
	got *models.RegisterPlaceRequest
}

func (f *fakeService) Register(ctx context.Context, req *models.RegisterPlaceRequest) (*models.PlaceResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.PlaceResponse{ID: 7, OwnerID: req.UserID, Name: req.Name, StaffIDs: []string{}, Categories: req.Categories}, nil
}

func post(h *Handler, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/places", strings.NewReader(body))
	if userID != "" {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	w := httptest.NewRecorder()
	h.Handle(w, req)
	return w
}

func TestHandle_Created(t *testing.T) {
	svc := &fakeService{}
	w := post(NewHandler(svc, logger.Nop()), "owner-1", validBody)

	require.Equal(t, http.StatusCreated, w.Code)
	var body models.PlaceResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, int64(7), body.ID)
	assert.Equal(t, "owner-1", body.OwnerID)
	assert.Equal(t, "owner-1", svc.got.UserID)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		body   string
		err    error
		status int
	}{
		{name: "anonymous", body: validBody, status: http.StatusUnauthorized},
		{name: "no categories", userID: "owner-1", body: `{"name":"X","address":"Y","categories":[]}`, status: http.StatusBadRequest},
		{name: "unknown field", userID: "owner-1", body: `{"name":"X","address":"Y","categories":["spa"],"rating":5}`, status: http.StatusBadRequest},
		{name: "customer account", userID: "owner-1", body: validBody, err: places.ErrNotPlaceAccount, status: http.StatusForbidden},
		{name: "unregistered", userID: "owner-1", body: validBody, err: places.ErrUserNotFound, status: http.StatusNotFound},
		{name: "bad category", userID: "owner-1", body: validBody, err: places.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", userID: "owner-1", body: validBody, err: places.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(NewHandler(&fakeService{err: tt.err}, logger.Nop()), tt.userID, tt.body)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}
