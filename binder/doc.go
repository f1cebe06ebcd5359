// Package binder decodes HTTP requests into typed request structs for the
// handler package. Each binder handles one source (JSON body, path
// parameters) and the handler applies them in order.
//
// All errors wrap one of the package sentinels (ErrInvalidJSON,
// ErrUnsupportedMediaType, ...) so error handlers can map them to status
// codes with errors.Is.
package binder
