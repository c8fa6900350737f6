// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-trade-desk/internal/app"
	"github.com/MKhiriev/go-trade-desk/internal/utils"
	"github.com/MKhiriev/go-trade-desk/models"
)

func (h *Handler) verifyActivationCode(w http.ResponseWriter, r *http.Request) {
	var req models.ActivationCodeRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.services.ActivationService.Redeem(r.Context(), req.Code); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgActivationCodeVerified}, http.StatusOK)
}

func (h *Handler) calculateOrderValue(w http.ResponseWriter, r *http.Request) {
	var req models.OrderValueRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.services.CalculatorService.CalculateOrderValue(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
