// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package catalog

import (
	"strconv"
	"testing"

	"github.com/tomtom215/recomendador/internal/models"
)

func pool(n int) []models.CatalogItem {
	out := make([]models.CatalogItem, n)
	for i := range out {
		out[i] = models.CatalogItem{ID: strconv.Itoa(i), Category: models.CategoryBooks}
	}
	return out
}

// sequence returns a deterministic source cycling through values.
func sequence(values ...float64) RandomSource {
	i := 0
	return func() float64 {
		v := values[i%len(values)]
		i++
		return v
	}
}

func TestSample_SizeBound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		poolSize int
		n        int
		want     int
	}{
		{0, 12, 0},
		{5, 12, 5},
		{12, 12, 12},
		{40, 12, 12},
		{40, 0, DefaultSampleSize},
		{40, 3, 3},
	}
	for _, tt := range tests {
		got := Sample(pool(tt.poolSize), tt.n, nil)
		if len(got) != tt.want {
			t.Errorf("Sample(pool=%d, n=%d) len = %d, want %d", tt.poolSize, tt.n, len(got), tt.want)
		}

		seen := make(map[string]bool)
		for _, it := range got {
			if seen[it.ID] {
				t.Errorf("Sample(pool=%d) returned %s twice", tt.poolSize, it.ID)
			}
			seen[it.ID] = true
		}
	}
}

func TestSample_Deterministic(t *testing.T) {
	t.Parallel()

	p := pool(5)
	// Always picking the first remaining index keeps source order.
	got := Sample(p, 3, sequence(0))
	assertIDs(t, got, "0", "1", "2")

	// Picking the last remaining index each time walks the pool backwards:
	// swap(0,4) -> 4, swap(1,4) -> 0, swap(2,4) -> 1.
	got = Sample(p, 3, sequence(0.999))
	assertIDs(t, got, "4", "0", "1")

	if p[0].ID != "0" || p[4].ID != "4" {
		t.Error("Sample must not reorder the input pool")
	}
}

func TestSample_ToleratesOutOfRangeSource(t *testing.T) {
	t.Parallel()

	got := Sample(pool(4), 4, sequence(1.0, -0.5))
	if len(got) != 4 {
		t.Fatalf("len = %d", len(got))
	}
	seen := make(map[string]bool)
	for _, it := range got {
		seen[it.ID] = true
	}
	if len(seen) != 4 {
		t.Errorf("duplicates drawn: %v", ids(got))
	}
}

func TestSample_EveryItemReachable(t *testing.T) {
	t.Parallel()

	p := pool(20)
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		for _, it := range Sample(p, 12, nil) {
			seen[it.ID] = true
		}
	}
	if len(seen) != len(p) {
		t.Errorf("only %d of %d items were ever drawn", len(seen), len(p))
	}
}
