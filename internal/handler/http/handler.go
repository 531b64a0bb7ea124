// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
)

type Handler struct {
	services *service.Services

	// uploads controls where multipart files are staged and how large a
	// request body may be.
	uploads config.Files

	// requestTimeout bounds every request; zero disables the limit.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		uploads:        cfg.Storage.Files,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
