// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package catalog

import (
	"sync/atomic"

	"github.com/tomtom215/recomendador/internal/logging"
	"github.com/tomtom215/recomendador/internal/metrics"
	"github.com/tomtom215/recomendador/internal/models"
)

var revisions atomic.Uint64

// Catalog is an immutable item set.
type Catalog struct {
	items    []models.CatalogItem
	index    map[models.ItemRef]int
	counts   map[models.Category]int
	revision uint64
}

// New indexes items. Category aliases are resolved and items whose category
// stays unknown are dropped. When an (category, id) pair repeats, the first
// record wins and the rest are dropped with a warning.
func New(items []models.CatalogItem) *Catalog {
	c := &Catalog{
		items:    make([]models.CatalogItem, 0, len(items)),
		index:    make(map[models.ItemRef]int, len(items)),
		counts:   make(map[models.Category]int),
		revision: revisions.Add(1),
	}

	for i := range items {
		it := items[i]
		CanonicalCategory(&it)
		if !it.Category.Valid() {
			logging.Warn().Str("id", it.ID).Str("category", string(it.Category)).Msg("Catalog item with unknown category dropped")
			metrics.RecordRejectedItem("invalid")
			continue
		}
		ref := it.Ref()
		if _, dup := c.index[ref]; dup {
			logging.Warn().Str("item", ref.String()).Msg("Duplicate catalog item dropped")
			metrics.RecordRejectedItem("duplicate")
			continue
		}
		c.index[ref] = len(c.items)
		c.items = append(c.items, it)
		c.counts[it.Category]++
	}
	return c
}

// Empty returns a catalog with no items.
func Empty() *Catalog {
	return New(nil)
}

// Items returns every item in load order.
func (c *Catalog) Items() []models.CatalogItem {
	if c == nil {
		return nil
	}
	return c.items
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Revision identifies this catalog among all catalogs built by the process.
func (c *Catalog) Revision() uint64 {
	if c == nil {
		return 0
	}
	return c.revision
}

// Find looks an item up by reference.
func (c *Catalog) Find(ref models.ItemRef) (models.CatalogItem, bool) {
	if c == nil {
		return models.CatalogItem{}, false
	}
	i, ok := c.index[ref]
	if !ok {
		return models.CatalogItem{}, false
	}
	return c.items[i], true
}

// Counts returns the item count per category, keyed by category id.
func (c *Catalog) Counts() map[string]int {
	out := make(map[string]int, len(models.Categories))
	for _, cat := range models.Categories {
		out[string(cat)] = 0
	}
	if c != nil {
		for cat, n := range c.counts {
			out[string(cat)] = n
		}
	}
	return out
}
