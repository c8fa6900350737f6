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

// decode reads the JSON body into dst and answers 400 when it is malformed.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := utils.ReadJSON(r, dst); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("Invalid JSON was passed")
		writeErrorMessage(w, http.StatusBadRequest, app.MsgInvalidJSON)
		return false
	}
	return true
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.SignupRequest
	if !decode(w, r, &req) {
		return
	}

	user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.IssueToken(ctx, user.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Message: app.MsgSignupSuccessful,
		Token:   token.String(),
		User:    user.View(),
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if !decode(w, r, &req) {
		return
	}

	user, err := h.services.AuthService.Authenticate(ctx, req.Identifier, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.IssueToken(ctx, user.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", user.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.AuthResponse{
		Message: app.MsgLoginSuccessful,
		Token:   token.String(),
		User:    user.View(),
	}, http.StatusOK)
}

// logout only acknowledges: session tokens are not revocable and the client
// discards its copy.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.ParseBearerToken(r.Header.Get("Authorization")); err == nil {
		logger.FromRequest(r).Debug().Msg("user logged out")
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgLogoutSuccessful}, http.StatusOK)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		// auth middleware guarantees the id, reaching this is a wiring bug
		writeErrorMessage(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	user, err := h.services.AuthService.GetUser(ctx, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{User: user.View()}, http.StatusOK)
}
