package create_payment_preference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurnIt/internal/service/payments"
	"github.com/m04kA/TurnIt/internal/service/payments/models"
	"github.com/m04kA/TurnIt/pkg/logger"
)

type fakeService struct {
	err error
}

func (f fakeService) CreatePreference(ctx context.Context, req *models.CreatePreferenceRequest) (*models.PreferenceResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.PreferenceResponse{PreferenceID: "abc-123", CheckoutURL: "https://checkout/abc-123"}, nil
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/preferences", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Handle(w, req)
	return w
}

func TestHandle_Created(t *testing.T) {
	w := post(NewHandler(fakeService{}, logger.Nop()), `{"title":"Corte","unitPrice":"1500.00"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var body models.PreferenceResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "abc-123", body.PreferenceID)
}

func TestHandle_ErrorMapping(t *testing.T) {
	valid := `{"title":"Corte","unitPrice":1500}`
	tests := []struct {
		name   string
		err    error
		body   string
		status int
	}{
		{name: "malformed", body: `{"title":`, status: http.StatusBadRequest},
		{name: "zero price", body: `{"title":"Corte","unitPrice":0}`, status: http.StatusBadRequest},
		{name: "missing title", body: `{"unitPrice":10}`, status: http.StatusBadRequest},
		{name: "rejected", err: payments.ErrPreferenceFailed, body: valid, status: http.StatusBadGateway},
		{name: "down", err: payments.ErrServiceUnavailable, body: valid, status: http.StatusServiceUnavailable},
		{name: "invalid", err: payments.ErrInvalidInput, body: valid, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(NewHandler(fakeService{err: tt.err}, logger.Nop()), tt.body)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}
