package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/userapi/binder"
	"github.com/dmitrymomot/userapi/pkg/logger"
	"github.com/dmitrymomot/userapi/pkg/validator"
)

// Classify maps err to a status code and a client-safe message.
//
//   - validator.ValidationErrors: 422 with the joined field messages
//   - missing or unsupported content type: 415
//   - malformed JSON or path parameters: 400
//   - HTTPError: its own code and message
//   - anything else: 500 with a generic message
func Classify(err error) (int, string) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return ErrUnprocessableEntity.Code, ve.Error()
	}
	if errors.Is(err, binder.ErrUnsupportedMediaType) || errors.Is(err, binder.ErrMissingContentType) {
		return ErrUnsupportedMediaType.Code, err.Error()
	}
	if errors.Is(err, binder.ErrInvalidJSON) || errors.Is(err, binder.ErrInvalidPath) {
		return ErrBadRequest.Code, err.Error()
	}
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, httpErr.Message
	}
	return ErrInternalServerError.Code, ErrInternalServerError.Message
}

// NewErrorHandler returns an ErrorHandler rendering {"error": msg} with the
// status chosen by Classify. Client errors are logged at warn level, server
// errors at error level. A nil logger falls back to slog.Default().
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	return func(ctx Context, err error) {
		l := log
		if l == nil {
			l = slog.Default()
		}

		status, message := Classify(err)
		r := ctx.Request()

		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		l.LogAttrs(ctx, level, "request failed",
			logger.HTTPRequest(r.Method, r.URL.Path),
			slog.Int("status", status),
			logger.Error(err),
		)

		if rerr := JSONError(message, WithJSONStatus(status)).Render(ctx.ResponseWriter(), r); rerr != nil {
			l.LogAttrs(ctx, slog.LevelError, "failed to render error response", logger.Error(rerr))
		}
	}
}
