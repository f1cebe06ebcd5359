package handler

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the wire shape of every error response: {"error": "..."}.
type ErrorBody struct {
	Error string `json:"error"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONStatus sets a custom HTTP status code. Non-positive values are ignored.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		if status > 0 {
			r.status = status
		}
	}
}

// JSON renders v as the response body, with status 200 unless overridden.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: v}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders {"error": message}. The status defaults to 200, matching
// the service's payload-level error contract; pass WithJSONStatus to change it.
func JSONError(message string, opts ...JSONOption) Response {
	return JSON(ErrorBody{Error: message}, opts...)
}
