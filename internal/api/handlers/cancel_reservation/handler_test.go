package cancel_reservation

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurnIt/internal/api/middleware"
	"github.com/m04kA/TurnIt/internal/domain"
	"github.com/m04kA/TurnIt/internal/testutil/turnostore"
	cancelReservation "github.com/m04kA/TurnIt/internal/usecase/cancel_reservation"
	"github.com/m04kA/TurnIt/pkg/logger"
)

func TestHandle(t *testing.T) {
	store := turnostore.New()
	rec := turnostore.NewRecorder()
	h := NewHandler(cancelReservation.NewUseCase(store, store.TxManager(), rec, rec, logger.Nop()), logger.Nop())

	day := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
	id := strconv.FormatInt(store.Put(domain.Turno{
		PlaceID: 7, Date: day, Time: "10:00", DateTime: day.Add(10 * time.Hour),
		Slots: 2, SlotsAvailable: 1, Reservations: []string{"ana"},
	}), 10)

	call := func(userID, turnoID string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/turnos/"+turnoID+"/reservations", nil)
		req = mux.SetURLVars(req, map[string]string{"turnoId": turnoID})
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
		w := httptest.NewRecorder()
		h.Handle(w, req)
		return w
	}

	assert.Equal(t, http.StatusNotFound, call("bruno", id).Code)
	assert.Equal(t, http.StatusNotFound, call("ana", "999").Code)

	w := call("ana", id)
	require.Equal(t, http.StatusOK, w.Code)
	var body TurnoStateResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, 2, body.SlotsAvailable)

	assert.Equal(t, http.StatusNotFound, call("ana", id).Code)
}
