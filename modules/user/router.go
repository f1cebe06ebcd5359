package user

import (
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/userapi/binder"
	"github.com/dmitrymomot/userapi/handler"
)

// Router mounts the user routes relative to its mount point:
//
//	POST   /       create
//	GET    /       list
//	GET    /{id}   find by id
//	PUT    /{id}   partial update
//	DELETE /{id}   delete
//
// eh renders binding and validation failures; nil uses handler.NewErrorHandler(nil).
//
// Example:
//
//	r.Mount("/users", user.Router(user.NewHandlers(repo), handler.NewErrorHandler(log)))
func Router(h *Handlers, eh handler.ErrorHandler[handler.Context]) chi.Router {
	if eh == nil {
		eh = handler.NewErrorHandler(nil)
	}
	path := binder.Path(chi.URLParam)

	r := chi.NewRouter()
	r.Post("/", handler.Wrap(h.Create,
		handler.WithBinders[handler.Context, CreateUserRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, CreateUserRequest](eh),
	))
	r.Get("/", handler.Wrap(h.List,
		handler.WithErrorHandler[handler.Context, struct{}](eh),
	))
	r.Get("/{id}", handler.Wrap(h.Get,
		handler.WithBinders[handler.Context, idRequest](path),
		handler.WithErrorHandler[handler.Context, idRequest](eh),
	))
	r.Put("/{id}", handler.Wrap(h.Update,
		handler.WithBinders[handler.Context, UpdateUserRequest](path, binder.JSON()),
		handler.WithErrorHandler[handler.Context, UpdateUserRequest](eh),
	))
	r.Delete("/{id}", handler.Wrap(h.Delete,
		handler.WithBinders[handler.Context, idRequest](path),
		handler.WithErrorHandler[handler.Context, idRequest](eh),
	))
	return r
}
