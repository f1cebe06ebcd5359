// Package health serves liveness and readiness probes.
package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/userapi/handler"
	"github.com/dmitrymomot/userapi/pkg/logger"
)

// DefaultReadyTimeout bounds the readiness ping when no timeout is configured.
const DefaultReadyTimeout = 2 * time.Second

// PingFunc reports whether a dependency is reachable.
type PingFunc func(ctx context.Context) error

// LiveBody is returned by the liveness probe.
type LiveBody struct {
	Status string `json:"status"`
}

// ReadyBody is returned by the readiness probe.
type ReadyBody struct {
	Status string `json:"status"`
	DB     string `json:"db"`
}

// Handlers serves the probes.
type Handlers struct {
	ping    PingFunc
	timeout time.Duration
	log     *slog.Logger
}

type Option func(*Handlers)

// WithTimeout bounds the readiness ping. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(h *Handlers) {
		if d > 0 {
			h.timeout = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(h *Handlers) {
		if l != nil {
			h.log = l
		}
	}
}

// NewHandlers creates probe handlers. ping is the readiness check,
// typically mongo.Healthcheck(db).
func NewHandlers(ping PingFunc, opts ...Option) *Handlers {
	h := &Handlers{
		ping:    ping,
		timeout: DefaultReadyTimeout,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With(logger.Component("health"))
	return h
}

// Live always reports the process as alive.
func (h *Handlers) Live(_ handler.Context, _ struct{}) handler.Response {
	return handler.JSON(LiveBody{Status: "alive"})
}

// Ready pings the database and answers 503 when it is unreachable.
func (h *Handlers) Ready(ctx handler.Context, _ struct{}) handler.Response {
	if h.ping == nil {
		return handler.JSON(ReadyBody{Status: "ready", DB: "connected"})
	}

	pingCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if err := h.ping(pingCtx); err != nil {
		h.log.WarnContext(ctx, "readiness check failed",
			logger.Error(err),
		)
		return handler.JSON(ReadyBody{Status: "not_ready", DB: "down"},
			handler.WithJSONStatus(http.StatusServiceUnavailable))
	}
	return handler.JSON(ReadyBody{Status: "ready", DB: "connected"})
}

// Router mounts GET /live and GET /ready.
func Router(h *Handlers) chi.Router {
	r := chi.NewRouter()
	r.Get("/live", handler.Wrap(h.Live))
	r.Get("/ready", handler.Wrap(h.Ready))
	return r
}
