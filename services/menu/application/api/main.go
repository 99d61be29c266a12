package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/qrmenu/pkg/app"
	"github.com/ghuser/qrmenu/pkg/session"
	"github.com/ghuser/qrmenu/services/menu/application/handlers"
	appsvcs "github.com/ghuser/qrmenu/services/menu/application/services"
)

// MenuRoutes registers the operator-facing editor endpoints on the provided
// chi router and the diner-facing viewer on root. The editor is keyed by the
// session cookie; the viewer is public.
func MenuRoutes(api chi.Router, root chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)

	api.Group(func(r chi.Router) {
		r.Use(session.Middleware(a.SessionStore, a.Logger))
		r.Route("/editor", func(r chi.Router) {
			r.Get("/", handlers.NewGetEditorHandler(svcs).Execute)
			r.Put("/restaurant", handlers.NewPutRestaurantHandler(svcs).Execute)
			r.Get("/qr.png", handlers.NewGetQRHandler(svcs).Execute)
			r.Post("/items", handlers.NewPostItemHandler(svcs).Execute)
			r.Put("/items/{id}", handlers.NewPutItemHandler(svcs).Execute)
			r.Delete("/items/{id}", handlers.NewDeleteItemHandler(svcs).Execute)
		})
	})

	root.Get("/menu", handlers.NewGetMenuHandler(svcs).Execute)
}
