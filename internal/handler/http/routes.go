// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS())
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/signup", h.signup)
		r.Post("/api/login", h.login)
		r.Post("/api/logout", h.logout)
		r.Post("/api/google-login", h.googleLogin)
		r.Post("/api/verify-google-token", h.verifyGoogleToken)

		r.Post("/api/forgot-password", h.forgotPassword)
		r.Post("/api/verify-reset-token", h.verifyResetToken)
		r.Post("/api/reset-password", h.resetPassword)

		r.Post("/api/verify-activation-code", h.verifyActivationCode)
		r.Post("/api/calculate-order-value", h.calculateOrderValue)

		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/profile", h.profile)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
