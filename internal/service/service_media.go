// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

type mediaService struct {
	gateway adapter.MediaGateway
	logger  *logger.Logger
}

func NewMediaService(gateway adapter.MediaGateway, logger *logger.Logger) MediaService {
	return &mediaService{
		gateway: gateway,
		logger:  logger,
	}
}

func (m *mediaService) Upload(ctx context.Context, localPath string) (models.Media, error) {
	log := logger.FromContext(ctx)
	defer m.removeLocal(ctx, localPath)

	media, err := m.gateway.Upload(ctx, localPath)
	if err != nil {
		log.Err(err).Str("func", "*mediaService.Upload").Msg("media upload failed")
		return models.Media{}, fmt.Errorf("%w: %w", ErrMediaUploadFailed, err)
	}

	return media, nil
}

func (m *mediaService) Discard(ctx context.Context, media models.Media) {
	if media.PublicID == "" {
		return
	}

	if err := m.gateway.Destroy(ctx, media.PublicID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*mediaService.Discard").
			Str("public_id", media.PublicID).
			Msg("orphaned media could not be deleted")
	}
}

func (m *mediaService) removeLocal(ctx context.Context, localPath string) {
	if err := os.Remove(localPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "*mediaService.removeLocal").Str("path", localPath).Msg("could not remove staged file")
	}
}
