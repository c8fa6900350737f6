// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-trade-desk/internal/logger"
	"github.com/MKhiriev/go-trade-desk/internal/service"
	"github.com/MKhiriev/go-trade-desk/internal/utils"
)

// auth is an HTTP middleware that enforces bearer session tokens.
//
// It extracts the token from the "Authorization" header, validates it via
// [service.AuthService.ParseToken] and, on success, stores the user's ID in
// the request context (see [utils.WithUserID]).
//
// A request without a bearer token is answered with 401 Unauthorized, a
// request whose token is rejected with 403 Forbidden.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Send()
			h.writeError(w, r, service.ErrUnauthenticated)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}
