package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/obiajulu/fintrack-be/internal/api/handlers"
	"github.com/obiajulu/fintrack-be/internal/api/respond"
	"github.com/obiajulu/fintrack-be/internal/apperror"
	"github.com/obiajulu/fintrack-be/internal/auth"
	"github.com/obiajulu/fintrack-be/internal/config"
	"github.com/obiajulu/fintrack-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(cfg *config.Config, tokens *auth.TokenManager, authService services.AuthServiceProvider, transactionService services.TransactionServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Unknown routes and methods still answer with the error envelope.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respond.Error(w, req, apperror.NotFound(fmt.Sprintf("Route not found: %s %s", req.Method, req.URL.Path)))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respond.Error(w, req, apperror.NotFound(fmt.Sprintf("Route not found: %s %s", req.Method, req.URL.Path)))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)

	// API versioning
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(tokens.RequireAuth)
			r.Post("/", transactionHandler.Create)
			r.Get("/", transactionHandler.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", transactionHandler.Get)
				r.Patch("/", transactionHandler.Update)
				r.Delete("/", transactionHandler.Delete)
			})
		})
	})

	return r
}
