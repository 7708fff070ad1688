// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package catalog

import (
	"time"

	"github.com/tomtom215/recomendador/internal/cache"
	"github.com/tomtom215/recomendador/internal/filter"
	"github.com/tomtom215/recomendador/internal/metrics"
	"github.com/tomtom215/recomendador/internal/models"
)

// ProjectorConfig tunes a Projector.
type ProjectorConfig struct {
	// RegionalTags overrides DefaultRegionalTags when non-empty.
	RegionalTags []string
	// CacheSize and CacheTTL size the memo; zero values pick the cache defaults.
	CacheSize int
	CacheTTL  time.Duration
}

type projectionKey struct {
	revision uint64
	state    filter.State
	lang     models.Lang
}

// Projector memoizes projections. Catalogs are immutable and identified by
// revision, so a cached result is valid until it expires.
type Projector struct {
	regional RegionalMatcher
	memo     *cache.LRU[projectionKey, []models.CatalogItem]
}

// NewProjector builds a Projector.
func NewProjector(cfg ProjectorConfig) *Projector {
	tags := cfg.RegionalTags
	if len(tags) == 0 {
		tags = DefaultRegionalTags
	}
	return &Projector{
		regional: NewRegionalMatcher(tags),
		memo:     cache.NewLRU[projectionKey, []models.CatalogItem](cfg.CacheSize, cfg.CacheTTL),
	}
}

// Project returns the visible items of c for state in lang.
func (p *Projector) Project(c *Catalog, state filter.State, lang models.Lang) []models.CatalogItem {
	key := projectionKey{revision: c.Revision(), state: state, lang: lang}
	if items, ok := p.memo.Get(key); ok {
		metrics.RecordProjectionCache(true)
		return items
	}
	metrics.RecordProjectionCache(false)

	start := time.Now()
	items := project(c.Items(), state, lang, p.regional)
	metrics.RecordProjection(string(state.Category()), len(items), time.Since(start))

	p.memo.Put(key, items)
	return items
}

// IsRegional reports whether it carries one of the configured regional tags.
func (p *Projector) IsRegional(it models.CatalogItem, lang models.Lang) bool {
	return p.regional.Match(&it, lang)
}

// Invalidate drops every memoized projection.
func (p *Projector) Invalidate() {
	p.memo.Purge()
}
