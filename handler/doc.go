// Package handler provides type-safe HTTP handlers built on generics.
//
// A HandlerFunc receives a Context and an already-bound request value and
// returns a Response. Wrap adapts it to http.HandlerFunc, running binders
// first and routing binding, nil-response and render errors to an
// ErrorHandler:
//
//	type getUserRequest struct {
//		ID string `path:"id"`
//	}
//
//	get := func(ctx handler.Context, req getUserRequest) handler.Response {
//		u, err := store.FindByID(ctx, req.ID)
//		if err != nil {
//			return handler.JSONError(err.Error())
//		}
//		return handler.JSON(u)
//	}
//
//	r.Get("/users/{id}", handler.Wrap(get,
//		handler.WithBinders[handler.Context, getUserRequest](binder.Path(chi.URLParam)),
//	))
//
// Error responses always use the shape {"error": "..."}.
package handler
