package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.withAuth, h.withRateLimit)

		r.Route("/api/vault", func(r chi.Router) {
			r.Post("/encrypt", h.encryptField)
			r.Post("/decrypt", h.decryptField)
			r.Post("/mask", h.maskField)
			r.Post("/card", h.encryptCard)
			r.Post("/account", h.encryptAccount)
		})

		r.Route("/api/credentials", func(r chi.Router) {
			r.Post("/hash", h.hashPassword)
			r.Post("/verify", h.verifyPassword)
			r.Post("/strength", h.passwordStrength)
		})

		r.Route("/api/otp", func(r chi.Router) {
			r.Post("/secret", h.generateOTPSecret)
			r.Post("/verify", h.verifyOTP)
		})

		r.Post("/api/exports", h.createExport)
		r.Get("/api/audit", h.listAudit)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
