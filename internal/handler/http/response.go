// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// respondWithError answers with the status mapped from err. Client failures
// carry the error text as message; server failures carry fallback.
func respondWithError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := statusFromError(err)

	message := fallback
	if status < http.StatusInternalServerError {
		message = err.Error()
	}

	respondWithStatus(w, r, status, message, err)
}

// respondWithStatus writes the error envelope. The error text is only
// exposed as detail for server failures.
func respondWithStatus(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	log := logger.FromRequest(r)

	body := models.ErrorResponse{Message: message}
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(message)
		if err != nil {
			body.Error = err.Error()
		}
	} else {
		log.Debug().Err(err).Int("status", status).Msg(message)
	}

	respond(w, r, body, status)
}

func respond(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
