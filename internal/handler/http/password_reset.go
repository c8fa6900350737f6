// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-trade-desk/internal/app"
	"github.com/MKhiriev/go-trade-desk/internal/service"
	"github.com/MKhiriev/go-trade-desk/internal/utils"
	"github.com/MKhiriev/go-trade-desk/models"
)

// forgotPassword answers identically for known and unknown addresses.
func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.services.PasswordResetService.RequestReset(r.Context(), req.Email); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgResetLinkSent}, http.StatusOK)
}

func (h *Handler) verifyResetToken(w http.ResponseWriter, r *http.Request) {
	var req models.TokenRequest
	if !decode(w, r, &req) {
		return
	}

	valid, err := h.services.PasswordResetService.VerifyResetToken(r.Context(), req.Token)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !valid {
		utils.WriteJSON(w, models.ResetTokenValidity{
			Valid: false,
			Error: service.ErrInvalidOrExpiredToken.Message,
		}, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, models.ResetTokenValidity{Valid: true}, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.services.PasswordResetService.Redeem(r.Context(), req.Token, req.Password); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgPasswordReset}, http.StatusOK)
}
