// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-trade-desk/internal/logger"
	"github.com/MKhiriev/go-trade-desk/internal/service"
	"github.com/MKhiriev/go-trade-desk/internal/utils"
	"github.com/MKhiriev/go-trade-desk/models"
)

var kindStatusMap = map[service.Kind]int{
	service.KindValidation:        http.StatusBadRequest,
	service.KindDuplicate:         http.StatusConflict,
	service.KindUnauthenticated:   http.StatusUnauthorized,
	service.KindInvalidCredential: http.StatusUnauthorized,
	service.KindInvalidToken:      http.StatusForbidden,
	service.KindNotFound:          http.StatusNotFound,
	service.KindUpstream:          http.StatusInternalServerError,
	service.KindInternal:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	if status, ok := kindStatusMap[service.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// writeError answers with the status and public message of err. The cause
// is logged, never sent.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeErrorMessage(w, status, service.PublicMessage(err))
}

func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
