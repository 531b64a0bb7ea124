// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter contains clients for the external services the blog relies
// on. Currently that is the media host that stores avatars and cover images.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// MediaGateway uploads files to the media host and deletes them again.
type MediaGateway interface {
	// Upload sends the file at localPath and returns its durable public URL
	// together with the host-side id. The local file is not touched.
	Upload(ctx context.Context, localPath string) (models.Media, error)

	// Destroy deletes a previously uploaded file by its public id.
	Destroy(ctx context.Context, publicID string) error
}
