// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers of the server.
func NewWorkers(cfg config.StructuredConfig, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewTempFileJanitor(cfg.Storage.Files.TempDir, cfg.Storage.Files.TempFileTTL, cfg.Workers.TempSweepInterval, logger),
		},
	}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
