package main

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/TurnIt/internal/api/handlers"
	"github.com/m04kA/TurnIt/internal/api/middleware"
)

const (
	msgRouteNotFound    = "recurso no encontrado"
	msgMethodNotAllowed = "método no permitido"
)

// apiRoute маршрут /api/v1
// protected: токен обязателен и действует rate limit, иначе токен опционален
type apiRoute struct {
	method    string
	path      string
	handler   http.HandlerFunc
	protected bool
}

// registerAPI регистрирует маршруты на одном роутере, чтобы несовпадение метода давало 405
func registerAPI(r *mux.Router, auth *middleware.Authenticator, limiter *middleware.RateLimiter, routes []apiRoute) {
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondNotFound(w, msgRouteNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	})

	api := r.PathPrefix("/api/v1").Subrouter()

	for _, route := range routes {
		var h http.Handler = route.handler
		if route.protected {
			if limiter != nil {
				h = limiter.Middleware(h)
			}
			h = auth.Required(h)
		} else {
			h = auth.Optional(h)
		}
		api.Handle(route.path, h).Methods(route.method)
	}
}
