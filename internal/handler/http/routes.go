package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Get("/api/countries", h.listCountries)
		r.Get("/api/countries/{code}", h.getCountryByCode)

		// activation flow: the target holds no credentials yet and cannot
		// authenticate, so the first password is set without a token
		r.Put("/api/users/{id}/password", h.setPassword)
	})

	// routes behind JWT authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/users", h.createUser)
		r.Get("/api/users", h.listUsers)
		r.Get("/api/users/{id}", h.getUser)
		r.Put("/api/users/{id}", h.updateUser)
		r.Delete("/api/users/{id}", h.deleteUser)

		r.Patch("/api/users/{id}/password", h.updatePassword)

		r.Post("/api/users/{id}/activate", h.activateUser)
		r.Post("/api/users/{id}/deactivate", h.deactivateUser)

		r.Post("/api/users/{id}/roles/{role}", h.assignRole)
		r.Delete("/api/users/{id}/roles/{role}", h.removeRole)

		r.Get("/api/audit", h.listAuditEvents)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
