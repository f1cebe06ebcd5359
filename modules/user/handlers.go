package user

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/userapi/handler"
	"github.com/dmitrymomot/userapi/pkg/logger"
)

// Store is the persistence contract the HTTP handlers depend on.
// *Repository implements it.
type Store interface {
	Create(ctx context.Context, req CreateUserRequest) (User, error)
	List(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id string) (User, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) error
	Delete(ctx context.Context, id string) error
}

// Client-facing messages.
const (
	msgInvalidID    = "Invalid ID"
	msgNotFound     = "User not found"
	msgUpdateFailed = "Update failed"
	msgDeleteFailed = "Delete failed"
)

// StatusBody is the acknowledgement returned by update and delete.
type StatusBody struct {
	Status string `json:"status"`
}

type idRequest struct {
	ID string `path:"id"`
}

// Handlers adapts a Store to HTTP.
//
// By default every outcome is answered with 200 and failures are reported in
// the body as {"error": "..."}. WithStrictStatus keeps the bodies and switches
// to 201/400/404/500 status codes.
type Handlers struct {
	store  Store
	log    *slog.Logger
	strict bool
}

// Option configures Handlers.
type Option func(*Handlers)

// WithStrictStatus enables conventional HTTP status codes for outcomes.
func WithStrictStatus(strict bool) Option {
	return func(h *Handlers) { h.strict = strict }
}

func WithLogger(l *slog.Logger) Option {
	return func(h *Handlers) {
		if l != nil {
			h.log = l
		}
	}
}

// NewHandlers creates user handlers backed by store.
func NewHandlers(store Store, opts ...Option) *Handlers {
	h := &Handlers{store: store, log: slog.Default()}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With(logger.Component("user.handlers"))
	return h
}

// Create handles POST /users.
func (h *Handlers) Create(ctx handler.Context, req CreateUserRequest) handler.Response {
	if err := req.Validate(); err != nil {
		return handler.Error(err)
	}

	u, err := h.store.Create(ctx, req)
	if err != nil {
		h.logFailure(ctx, "create", err)
		return handler.JSONError(err.Error(), h.status(http.StatusInternalServerError))
	}
	return handler.JSON(u, h.status(http.StatusCreated))
}

// List handles GET /users.
func (h *Handlers) List(ctx handler.Context, _ struct{}) handler.Response {
	users, err := h.store.List(ctx)
	if err != nil {
		h.logFailure(ctx, "list", err)
		return handler.JSONError(err.Error(), h.status(http.StatusInternalServerError))
	}
	return handler.JSON(users)
}

// Get handles GET /users/{id}.
func (h *Handlers) Get(ctx handler.Context, req idRequest) handler.Response {
	u, err := h.store.FindByID(ctx, req.ID)
	switch {
	case err == nil:
		return handler.JSON(u)
	case errors.Is(err, ErrInvalidID):
		h.logFailure(ctx, "get", err)
		return handler.JSONError(msgInvalidID, h.status(http.StatusBadRequest))
	case errors.Is(err, ErrNotFound):
		h.logFailure(ctx, "get", err)
		return handler.JSONError(msgNotFound, h.status(http.StatusNotFound))
	default:
		// Driver errors can name internal hosts; the detail goes to the log only.
		h.logFailure(ctx, "get", err)
		return handler.JSONError(msgInvalidID, h.status(http.StatusInternalServerError))
	}
}

// Update handles PUT /users/{id}.
func (h *Handlers) Update(ctx handler.Context, req UpdateUserRequest) handler.Response {
	if err := h.store.Update(ctx, req.ID, req); err != nil {
		h.logFailure(ctx, "update", err)
		return handler.JSONError(msgUpdateFailed, h.status(failureStatus(err)))
	}
	return handler.JSON(StatusBody{Status: "updated"})
}

// Delete handles DELETE /users/{id}.
func (h *Handlers) Delete(ctx handler.Context, req idRequest) handler.Response {
	if err := h.store.Delete(ctx, req.ID); err != nil {
		h.logFailure(ctx, "delete", err)
		return handler.JSONError(msgDeleteFailed, h.status(failureStatus(err)))
	}
	return handler.JSON(StatusBody{Status: "deleted"})
}

// status applies code in strict mode. In compatible mode the code is
// dropped and the response keeps its 200 default.
func (h *Handlers) status(code int) handler.JSONOption {
	if !h.strict {
		code = 0
	}
	return handler.WithJSONStatus(code)
}

func failureStatus(err error) int {
	if errors.Is(err, ErrInvalidID) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *Handlers) logFailure(ctx context.Context, name string, err error) {
	level := slog.LevelWarn
	if errors.Is(err, ErrStorage) {
		level = slog.LevelError
	}
	h.log.LogAttrs(ctx, level, "user request failed",
		logger.Handler(name),
		logger.Error(err),
	)
}
