package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurnIt/internal/api/handlers"
	"github.com/m04kA/TurnIt/internal/api/middleware"
)

const testSecret = "test-secret"

func named(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.GetUserID(r.Context())
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"handler": name, "user": userID})
	}
}

func newTestRouter(t *testing.T, limiter *middleware.RateLimiter) *mux.Router {
	t.Helper()
	r := mux.NewRouter()
	registerAPI(r, middleware.NewAuthenticator(testSecret, ""), limiter, []apiRoute{
		{method: http.MethodGet, path: "/places", handler: named("list_places")},
		{method: http.MethodGet, path: "/places/{placeId}", handler: named("get_place")},
		{method: http.MethodPost, path: "/places", handler: named("register_place"), protected: true},
		{method: http.MethodPost, path: "/turnos/{turnoId}/reservations", handler: named("reserve_turno"), protected: true},
		{method: http.MethodDelete, path: "/turnos/{turnoId}/reservations", handler: named("cancel_reservation"), protected: true},
	})
	return r
}

func signedToken(t *testing.T, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func serve(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAPI_Dispatch(t *testing.T) {
	r := newTestRouter(t, nil)
	token := signedToken(t, "ana")

	tests := []struct {
		name    string
		method  string
		path    string
		token   string
		status  int
		handler string
	}{
		{name: "public anonymous", method: http.MethodGet, path: "/api/v1/places", status: http.StatusOK, handler: "list_places"},
		{name: "public with token", method: http.MethodGet, path: "/api/v1/places/7", token: token, status: http.StatusOK, handler: "get_place"},
		{name: "protected without token", method: http.MethodPost, path: "/api/v1/places", status: http.StatusUnauthorized},
		{name: "protected with token", method: http.MethodPost, path: "/api/v1/places", token: token, status: http.StatusOK, handler: "register_place"},
		{name: "same path other method", method: http.MethodDelete, path: "/api/v1/turnos/3/reservations", token: token, status: http.StatusOK, handler: "cancel_reservation"},
		{name: "unsupported method on public path", method: http.MethodDelete, path: "/api/v1/places/7", status: http.StatusMethodNotAllowed},
		{name: "unsupported method on shared path", method: http.MethodPatch, path: "/api/v1/places", token: token, status: http.StatusMethodNotAllowed},
		{name: "unknown path", method: http.MethodGet, path: "/api/v1/nowhere", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, tt.method, tt.path, tt.token)

			require.Equal(t, tt.status, w.Code)
			if tt.handler == "" {
				var body handlers.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.status, body.Code)
				return
			}
			var body map[string]string
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.handler, body["handler"])
			if tt.token != "" {
				assert.Equal(t, "ana", body["user"])
			}
		})
	}
}

func TestRegisterAPI_RateLimitsProtectedRoutesOnly(t *testing.T) {
	limiter := middleware.NewRateLimiter(0.001, 1)
	defer limiter.Stop()
	r := newTestRouter(t, limiter)
	token := signedToken(t, "ana")

	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/api/v1/turnos/3/reservations", token).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodPost, "/api/v1/turnos/3/reservations", token).Code)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/v1/places", "").Code)
	}
}
