// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package catalog

import (
	"math/rand"

	"github.com/tomtom215/recomendador/internal/models"
)

// DefaultSampleSize is the number of home-page picks.
const DefaultSampleSize = 12

// RandomSource returns uniform values in [0, 1).
type RandomSource func() float64

// DefaultRandom draws from the runtime's auto-seeded generator.
func DefaultRandom() float64 {
	return rand.Float64()
}

// Sample draws min(n, len(pool)) distinct items uniformly at random with a
// partial Fisher-Yates shuffle over an index slice; pool is not modified.
// n <= 0 selects DefaultSampleSize and a nil rnd selects DefaultRandom.
func Sample(pool []models.CatalogItem, n int, rnd RandomSource) []models.CatalogItem {
	if n <= 0 {
		n = DefaultSampleSize
	}
	if rnd == nil {
		rnd = DefaultRandom
	}
	if n > len(pool) {
		n = len(pool)
	}

	idx := make([]int, len(pool))
	for i := range idx {
		idx[i] = i
	}

	out := make([]models.CatalogItem, n)
	for i := 0; i < n; i++ {
		remaining := len(idx) - i
		j := i + int(rnd()*float64(remaining))
		// Guard against sources that return 1.0 or negatives.
		if j >= len(idx) {
			j = len(idx) - 1
		}
		if j < i {
			j = i
		}
		idx[i], idx[j] = idx[j], idx[i]
		out[i] = pool[idx[i]]
	}
	return out
}
