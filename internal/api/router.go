package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/lmoralesc/code-journal-be/internal/api/handlers"
	"github.com/lmoralesc/code-journal-be/internal/auth"
	"github.com/lmoralesc/code-journal-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(issuer *auth.TokenIssuer, userService services.UserServiceProvider, entryService services.EntryServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // Adjust for your frontend URL
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authHandler := handlers.NewAuthHandler(userService, issuer)
	entryHandler := handlers.NewEntryHandler(entryService)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/sign-up", authHandler.SignUp)
			r.Post("/sign-in", authHandler.SignIn)
		})

		// Everything below requires a valid bearer token
		r.Route("/entries", func(r chi.Router) {
			r.Use(auth.Middleware(issuer))
			r.Get("/", entryHandler.GetAll)
			r.Post("/", entryHandler.Create)
			r.Route("/{entryId}", func(r chi.Router) {
				r.Get("/", entryHandler.Get)
				r.Put("/", entryHandler.Update)
				r.Delete("/", entryHandler.Delete)
			})
		})
	})

	return r
}
