package handler

import (
	"net/http"
)

// HandlerFunc provides type-safe HTTP request handling with custom context support.
// C must implement the Context interface, R can be any request type.
//
// Example:
//
//	create := handler.HandlerFunc[handler.Context, CreateUserRequest](
//		func(ctx handler.Context, req CreateUserRequest) handler.Response {
//			u, err := repo.Create(ctx, req)
//			if err != nil {
//				return handler.JSONError(err.Error())
//			}
//			return handler.JSON(u)
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind parses HTTP requests into typed values.
type Bind func(r *http.Request, v any) error

// ErrorHandler handles errors from binding or rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// WrapOption configures the Wrap function.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

type wrapConfig[C Context, R any] struct {
	binders      []Bind
	errorHandler ErrorHandler[C]
}

// WithBinders sets request binders that will be applied in order.
// Each binder should process only its own source (body, path, ...).
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		for _, b := range binders {
			if b != nil {
				c.binders = append(c.binders, b)
			}
		}
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
//
// Binders run first; a binder error short-circuits to the error handler and
// the typed handler is never called. A nil Response or a render error is
// also reported to the error handler. Without WithErrorHandler, errors are
// rendered by NewErrorHandler(nil).
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.errorHandler == nil {
		def := NewErrorHandler(nil)
		cfg.errorHandler = func(ctx C, err error) { def(ctx, err) }
	}
	newContext := func(w http.ResponseWriter, r *http.Request) C {
		c, ok := NewContext(w, r).(C)
		if !ok {
			panic("handler: context type must be satisfied by handler.NewContext")
		}
		return c
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := newContext(w, r)

		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				cfg.errorHandler(ctx, err)
				return
			}
		}

		response := h(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
