package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"jobtrail/internal/api/handlers"
	"jobtrail/internal/auth"
	"jobtrail/internal/web"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(sessions *auth.Sessions, accountHandler *handlers.AccountHandler, jobHandler *handlers.JobHandler) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Embedded static assets
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.StaticFS()))))

	// Public auth routes
	r.Get("/register", accountHandler.ShowRegister)
	r.Post("/register", accountHandler.Register)
	r.Get("/login", accountHandler.ShowLogin)
	r.Post("/login", accountHandler.Login)

	// Everything else requires a session
	r.Group(func(r chi.Router) {
		r.Use(sessions.Middleware())

		r.Get("/logout", accountHandler.Logout)

		r.Get("/", jobHandler.Index)
		r.Get("/archived", jobHandler.Archived)
		r.Post("/add", jobHandler.Add)

		r.Route("/update/{id}", func(r chi.Router) {
			r.Get("/", jobHandler.ShowUpdate)
			r.Post("/", jobHandler.Update)
		})
		r.Post("/update-status/{id}", jobHandler.UpdateStatus)

		// Delete and archive accept GET as well so plain links work
		r.Get("/delete/{id}", jobHandler.Delete)
		r.Post("/delete/{id}", jobHandler.Delete)
		r.Get("/toggle-archive/{id}", jobHandler.ToggleArchive)
		r.Post("/toggle-archive/{id}", jobHandler.ToggleArchive)
	})

	return r
}
