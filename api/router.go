// Package api assembles the HTTP surface of the service.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/userapi/handler"
	"github.com/dmitrymomot/userapi/modules/health"
	"github.com/dmitrymomot/userapi/modules/user"
	"github.com/dmitrymomot/userapi/pkg/clientip"
	"github.com/dmitrymomot/userapi/pkg/mongo"
	"github.com/dmitrymomot/userapi/pkg/requestid"
)

// NewRouter builds the route table:
//
//	GET    /health/live
//	GET    /health/ready
//	POST   /users
//	GET    /users
//	GET    /users/{id}
//	PUT    /users/{id}
//	DELETE /users/{id}
//
// Every request passes through request id, client ip, access log, panic
// recovery and permissive CORS middleware, in that order.
func NewRouter(st State) http.Handler {
	log := st.Logger
	if log == nil {
		log = slog.Default()
	}

	users := st.Users
	if users == nil {
		if st.DB == nil {
			panic("api: State needs DB or Users")
		}
		users = user.NewRepository(st.DB, log)
	}
	ping := st.Ping
	if ping == nil && st.DB != nil {
		ping = mongo.Healthcheck(st.DB)
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware(st.TrustProxy),
		accessLog(log),
		middleware.Recoverer,
		permissiveCORS(),
	)

	r.Mount("/health", health.Router(health.NewHandlers(ping,
		health.WithTimeout(st.ReadyTimeout),
		health.WithLogger(log),
	)))
	r.Mount("/users", user.Router(
		user.NewHandlers(users,
			user.WithStrictStatus(st.StrictStatus),
			user.WithLogger(log),
		),
		handler.NewErrorHandler(log),
	))

	return r
}
