package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/rs/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(httprate.LimitByIP(h.cfg.RateLimit, time.Minute))
	router.Use(cors.New(cors.Options{
		AllowedOrigins:   h.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
	}).Handler)
	router.Use(h.sessions.LoadAndSave)
	router.Use(h.withCSRF)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/csrf-token", h.csrfToken)
		r.Get("/authenticated", h.authenticated)
		r.Get("/role", h.role)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/commands", h.listCommands)
		r.Get("/flashcards", h.listFlashcards)
		r.Get("/flashcards/categories", h.listCategories)
	})

	// mutating routes, admins only
	router.Group(func(r chi.Router) {
		r.Use(h.requireAdmin)

		r.Post("/commands", h.createCommand)
		r.Put("/commands", h.updateCommand)
		r.Patch("/commands", h.updateCommand)
		r.Delete("/commands", h.deleteCommand)

		r.Post("/flashcards", h.createFlashcard)
		r.Put("/flashcards", h.updateFlashcard)
		r.Patch("/flashcards", h.updateFlashcard)
		r.Delete("/flashcards", h.deleteFlashcard)

		r.Post("/flashcards/categories", h.createCategory)
		r.Put("/flashcards/categories", h.updateCategory)
		r.Patch("/flashcards/categories", h.updateCategory)
		r.Delete("/flashcards/categories", h.deleteCategory)
	})

	return router
}
