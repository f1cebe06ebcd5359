package handler

import "net/http"

// HTTPError is an error carrying the HTTP status it should be rendered with.
type HTTPError struct {
	Code    int
	Message string
}

func (e HTTPError) Error() string {
	return e.Message
}

// Statuses chosen by Classify.
var (
	ErrBadRequest           = HTTPError{Code: http.StatusBadRequest, Message: "bad request"}
	ErrUnsupportedMediaType = HTTPError{Code: http.StatusUnsupportedMediaType, Message: "unsupported media type"}
	ErrUnprocessableEntity  = HTTPError{Code: http.StatusUnprocessableEntity, Message: "validation failed"}
	ErrInternalServerError  = HTTPError{Code: http.StatusInternalServerError, Message: "internal server error"}
)
