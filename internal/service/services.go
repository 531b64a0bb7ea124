// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
)

type Services struct {
	AuthService  AuthService
	PostService  PostService
	MediaService MediaService
}

// NewServices wires the business services. Auth and post services are
// decorated with request validation.
func NewServices(storages *store.Storages, gateway adapter.MediaGateway, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	mediaService := NewMediaService(gateway, logger)

	return &Services{
		AuthService:  NewAuthValidationService().Wrap(NewAuthService(storages.UserRepository, mediaService, cfg.App, logger)),
		PostService:  NewPostValidationService().Wrap(NewPostService(storages.PostRepository, mediaService, logger)),
		MediaService: mediaService,
	}
}
