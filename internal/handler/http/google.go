// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-trade-desk/internal/app"
	"github.com/MKhiriev/go-trade-desk/internal/logger"
	"github.com/MKhiriev/go-trade-desk/internal/utils"
	"github.com/MKhiriev/go-trade-desk/models"
)

func (h *Handler) googleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.TokenRequest
	if !decode(w, r, &req) {
		return
	}

	user, identity, isNew, err := h.services.FederatedAuthService.LoginOrRegister(ctx, req.Token)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.IssueToken(ctx, user.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", user.ID).Bool("new_user", isNew).Msg("google login")

	view := user.View()
	view.Name = identity.Name
	utils.WriteJSON(w, models.AuthResponse{Token: token.String(), User: view}, http.StatusOK)
}

func (h *Handler) verifyGoogleToken(w http.ResponseWriter, r *http.Request) {
	var req models.TokenRequest
	if !decode(w, r, &req) {
		return
	}

	identity, err := h.services.FederatedAuthService.VerifyToken(r.Context(), req.Token)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.GoogleTokenResponse{
		Message: app.MsgGoogleTokenVerified,
		Payload: identity,
	}, http.StatusOK)
}
