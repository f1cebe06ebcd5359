package binder

import (
	"fmt"
	"net/http"
	"reflect"
)

// Path creates a binder that fills struct fields tagged `path:"name"` using
// extractor, typically chi.URLParam. Only string and *string fields are
// supported; untagged fields are left alone.
//
// Example:
//
//	type getUserRequest struct {
//		ID string `path:"id"`
//	}
//
//	r.Get("/users/{id}", handler.Wrap(h.get,
//		handler.WithBinders[handler.Context, getUserRequest](binder.Path(chi.URLParam)),
//	))
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return fmt.Errorf("%w: target must be a non-nil pointer to struct", ErrInvalidPath)
		}
		rv = rv.Elem()
		rt := rv.Type()

		for i := range rt.NumField() {
			sf := rt.Field(i)
			name, ok := sf.Tag.Lookup("path")
			if !ok || name == "" || name == "-" {
				continue
			}
			field := rv.Field(i)
			if !field.CanSet() {
				continue
			}

			value := extractor(r, name)
			if value == "" {
				continue
			}

			switch {
			case field.Kind() == reflect.String:
				field.SetString(value)
			case field.Kind() == reflect.Pointer && sf.Type.Elem().Kind() == reflect.String:
				p := reflect.New(sf.Type.Elem())
				p.Elem().SetString(value)
				field.Set(p)
			default:
				return fmt.Errorf("%w: field %s has unsupported type %s", ErrInvalidPath, sf.Name, sf.Type)
			}
		}
		return nil
	}
}
