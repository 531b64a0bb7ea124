// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
)

// TempFileJanitor removes staged uploads that outlived their TTL. Staged
// files are normally removed by the request that created them; leftovers
// come from crashes and aborted requests.
type TempFileJanitor struct {
	dir      string
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

func NewTempFileJanitor(dir string, ttl, interval time.Duration, logger *logger.Logger) *TempFileJanitor {
	return &TempFileJanitor{
		dir:      dir,
		ttl:      ttl,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Run sweeps once per interval until ctx is done. A non-positive interval
// disables the janitor.
func (j *TempFileJanitor) Run(ctx context.Context) {
	if j.interval <= 0 || j.dir == "" {
		j.logger.Info().Msg("temp file janitor disabled")
		return
	}

	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				j.Sweep()
			}
		}
	}()
}

// Sweep removes every regular file in the staging directory whose
// modification time is older than the TTL. It returns the number of files
// removed.
func (j *TempFileJanitor) Sweep() int {
	entries, err := os.ReadDir(j.dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			j.logger.Err(err).Str("func", "*TempFileJanitor.Sweep").Str("dir", j.dir).Msg("could not read staging directory")
		}
		return 0
	}

	deadline := j.now().Add(-j.ttl)
	removed := 0

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(deadline) {
			continue
		}

		path := filepath.Join(j.dir, entry.Name())
		if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			j.logger.Err(err).Str("func", "*TempFileJanitor.Sweep").Str("path", path).Msg("could not remove stale file")
			continue
		}
		removed++
	}

	if removed > 0 {
		j.logger.Info().Int("removed", removed).Msg("stale staged uploads removed")
	}

	return removed
}
