package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/scribeapp/scribe-be/internal/api/handlers"
	"github.com/scribeapp/scribe-be/internal/auth"
	"github.com/scribeapp/scribe-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(tokenService *auth.TokenService, userService services.UserServiceProvider, postService services.PostServiceProvider, eventService services.EventServiceProvider) *chi.Mux {
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

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, tokenService)
	postHandler := handlers.NewPostHandler(postService)
	eventHandler := handlers.NewEventHandler(eventService)

	requireAuth := tokenService.Middleware()

	r.Route("/api/auth/v1", func(r chi.Router) {
		r.Post("/register", userHandler.Register)
		r.Post("/login", userHandler.Login)
		r.Get("/users", userHandler.GetAll)
		r.Delete("/user/{userId}", userHandler.Delete)
		r.With(requireAuth).Get("/me", userHandler.GetMe)
	})

	r.Route("/api/posts/v1", func(r chi.Router) {
		r.Get("/", postHandler.GetAll)
		r.With(requireAuth).Post("/", postHandler.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", postHandler.Get)
			r.With(requireAuth).Put("/", postHandler.Update)
			r.With(requireAuth).Delete("/", postHandler.Delete)
		})
	})

	r.Get("/api/events/v1", eventHandler.GetRecent)

	return r
}
