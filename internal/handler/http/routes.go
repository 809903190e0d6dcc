package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the /api router. Reads are public so the portfolio site can
// render without credentials; every mutation plus the contact inbox sits
// behind the JWT middleware. POST /contact is the one public write: it is the
// visitor-facing contact form.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Route("/api", func(api chi.Router) {
		// public routes
		api.Group(func(r chi.Router) {
			r.Post("/auth/login", h.login)

			r.Get("/profile", h.getProfile)
			r.Get("/projects", h.listProjects)
			r.Get("/projects/{id}", h.getProject)
			r.Get("/experience", h.listExperience)
			r.Get("/experience/{id}", h.getExperience)
			r.Get("/skills", h.listSkills)
			r.Get("/skills/{id}", h.getSkill)
			r.Get("/features", h.listFeatures)
			r.Get("/features/{id}", h.getFeature)
			r.Get("/seo", h.getSEOSettings)
			r.Get("/seo/page/{page}", h.getSEOByPage)

			r.Post("/contact", h.submitContact)
		})

		// routes requiring a valid token
		api.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Put("/profile", h.updateProfile)

			r.Post("/projects", h.createProject)
			r.Put("/projects/{id}", h.updateProject)
			r.Delete("/projects/{id}", h.deleteProject)

			r.Post("/experience", h.createExperience)
			r.Put("/experience/{id}", h.updateExperience)
			r.Delete("/experience/{id}", h.deleteExperience)

			r.Post("/skills", h.createSkill)
			r.Put("/skills/{id}", h.updateSkill)
			r.Delete("/skills/{id}", h.deleteSkill)

			r.Post("/features", h.createFeature)
			r.Put("/features/{id}", h.updateFeature)
			r.Delete("/features/{id}", h.deleteFeature)

			r.Post("/seo/upsert", h.upsertSEO)
			r.Put("/seo/page/{page}", h.updateSEOByPage)

			r.Get("/contact/messages", h.listContactMessages)
		})
	})

	return router
}
