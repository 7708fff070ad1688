// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/recomendador/internal/logging"
)

// Reloader refreshes the catalog. It reports whether anything changed.
type Reloader interface {
	Reload(ctx context.Context) (bool, error)
}

// CatalogReloadService calls Reload on a fixed interval.
//
// Each tick:
//
//  1. Reload compares the catalog directory with the last load
//  2. An unchanged directory is a no-op
//  3. A changed one replaces the session catalog and redraws the home picks
//
// A failed reload is logged and the previous catalog stays in place. Only
// maxConsecutiveFailures failures in a row make Serve return, which hands
// the restart decision to suture.
//
// Example usage:
//
//	if cfg.Catalog.ReloadInterval > 0 {
//		tree.AddCatalogService(services.NewCatalogReloadService(reloader, cfg.Catalog.ReloadInterval))
//	}
type CatalogReloadService struct {
	reloader Reloader
	interval time.Duration
	name     string
}

const maxConsecutiveFailures = 3

// NewCatalogReloadService wraps reloader. interval must be positive.
func NewCatalogReloadService(reloader Reloader, interval time.Duration) *CatalogReloadService {
	return &CatalogReloadService{
		reloader: reloader,
		interval: interval,
		name:     "catalog-reloader",
	}
}

// Serve implements suture.Service.
func (c *CatalogReloadService) Serve(ctx context.Context) error {
	if c.interval <= 0 {
		return fmt.Errorf("catalog reload interval must be positive, got %v", c.interval)
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		changed, err := c.reloader.Reload(ctx)
		if err != nil {
			failures++
			logging.Warn().Err(err).Int("consecutive_failures", failures).Msg("Catalog reload failed, keeping previous catalog")
			if failures >= maxConsecutiveFailures {
				return fmt.Errorf("catalog reload failed %d times: %w", failures, err)
			}
			continue
		}
		failures = 0
		if changed {
			logging.Info().Msg("Catalog reloaded")
		}
	}
}

// String names the service in supervisor events.
func (c *CatalogReloadService) String() string {
	return c.name
}
