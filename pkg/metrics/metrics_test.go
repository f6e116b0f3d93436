package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_IncReservation(t *testing.T) {
	m := New("turnit")

	m.IncReservation("reserve", "success")
	m.IncReservation("reserve", "success")
	m.IncReservation("reserve", "no_availability")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ReservationsTotal.WithLabelValues("reserve", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReservationsTotal.WithLabelValues("reserve", "no_availability")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.IncReservation("cancel", "success")
	m.ObserveHTTP("GET", "/x", "200", time.Millisecond)
	m.ObserveQuery("query", time.Millisecond)
	m.IncGeocodeCache("hit")
}

func TestMetrics_HandlerExposesCounters(t *testing.T) {
	m := New("turnit")
	m.ObserveHTTP(http.MethodGet, "/api/v1/places", "200", 20*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `turnit_http_requests_total{method="GET",route="/api/v1/places",status="200"} 1`)
}

func TestNew_TwiceDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		New("turnit")
		New("turnit")
	})
}
