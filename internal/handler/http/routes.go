// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			// routes without authorization
			r.With(h.withRateLimit).Post("/signup", h.signup)
			r.With(h.withRateLimit).Post("/login", h.login)

			// routes with authorization
			r.With(h.auth).Get("/me", h.me)
		})

		r.Route("/companies", func(r chi.Router) {
			r.Get("/", h.listCompanies)
			r.Post("/", h.createCompany)
			r.Get("/{id}", h.getCompany)
			r.Patch("/{id}", h.updateCompany)
		})

		r.Post("/email/send", h.sendEmail)
		r.Get("/version", h.getServerVersion)
		r.Get("/health", h.health)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.CheckHTTPMethod)

	return router
}
