package list_turnos

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurnIt/internal/service/turnos"
	"github.com/m04kA/TurnIt/internal/service/turnos/models"
	"github.com/m04kA/TurnIt/pkg/logger"
)

type fakeService struct {
	err error
	got *models.ListTurnosRequest
}

func (f *fakeService) ListByPlace(ctx context.Context, req *models.ListTurnosRequest) (*models.TurnoListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.TurnoListResponse{Turnos: []models.TurnoResponse{}}, nil
}

func get(h *Handler, placeID, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/places/"+placeID+"/turnos"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"placeId": placeID})
	w := httptest.NewRecorder()
	h.Handle(w, req)
	return w
}

func TestHandle_ParsesFilters(t *testing.T) {
	svc := &fakeService{}

	w := get(NewHandler(svc, logger.Nop()), "7", "?date=2026-11-02&available=true")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), svc.got.PlaceID)
	require.NotNil(t, svc.got.Date)
	assert.Equal(t, "2026-11-02", svc.got.Date.Format("2006-01-02"))
	assert.True(t, svc.got.OnlyAvailable)
	assert.Empty(t, svc.got.ViewerID)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		placeID string
		query   string
		err     error
		status  int
	}{
		{name: "bad place id", placeID: "x", status: http.StatusBadRequest},
		{name: "bad date", placeID: "7", query: "?date=02/11/2026", status: http.StatusBadRequest},
		{name: "bad available", placeID: "7", query: "?available=maybe", status: http.StatusBadRequest},
		{name: "unknown place", placeID: "7", err: turnos.ErrPlaceNotFound, status: http.StatusNotFound},
		{name: "invalid", placeID: "7", err: turnos.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", placeID: "7", err: turnos.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(NewHandler(&fakeService{err: tt.err}, logger.Nop()), tt.placeID, tt.query)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}
