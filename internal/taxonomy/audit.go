// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package taxonomy

import (
	"sort"

	"github.com/tomtom215/recomendador/internal/logging"
	"github.com/tomtom215/recomendador/internal/metrics"
	"github.com/tomtom215/recomendador/internal/models"
)

const maxSampleIDs = 5

// UnmappedLabel is a raw subcategory that fell through to pass-through.
type UnmappedLabel struct {
	Key       Key             `json:"key"`
	Category  models.Category `json:"category"`
	Raw       []string        `json:"raw"`
	Count     int             `json:"count"`
	SampleIDs []string        `json:"sample_ids"`
}

// AuditReport summarizes how well catalog subcategories match the table.
type AuditReport struct {
	Items    int             `json:"items"`
	Mapped   int             `json:"mapped"`
	Unmapped []UnmappedLabel `json:"unmapped"`
}

// Audit lists subcategory labels with no table entry, grouped by category
// and pass-through key, most frequent first. Nothing is rewritten.
func Audit(items []models.CatalogItem) AuditReport {
	type groupKey struct {
		cat models.Category
		key Key
	}
	groups := make(map[groupKey]*UnmappedLabel)
	report := AuditReport{Items: len(items)}

	for i := range items {
		it := &items[i]
		if it.Subcategory == "" {
			continue
		}
		k := ToCanonical(it.Subcategory)
		if IsKnown(k) {
			report.Mapped++
			continue
		}

		gk := groupKey{cat: it.Category, key: k}
		u, ok := groups[gk]
		if !ok {
			u = &UnmappedLabel{Key: k, Category: it.Category}
			groups[gk] = u
		}
		u.Count++
		if !containsString(u.Raw, it.Subcategory) {
			u.Raw = append(u.Raw, it.Subcategory)
		}
		if len(u.SampleIDs) < maxSampleIDs {
			u.SampleIDs = append(u.SampleIDs, it.ID)
		}
	}

	report.Unmapped = make([]UnmappedLabel, 0, len(groups))
	for _, u := range groups {
		report.Unmapped = append(report.Unmapped, *u)
	}
	sort.Slice(report.Unmapped, func(i, j int) bool {
		a, b := report.Unmapped[i], report.Unmapped[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Key < b.Key
	})
	return report
}

// Log writes one debug line per unmapped label and updates the gauge.
func (r AuditReport) Log() {
	metrics.UnmappedSubcategories.Set(float64(len(r.Unmapped)))
	for _, u := range r.Unmapped {
		logging.Debug().
			Str("category", string(u.Category)).
			Str("key", string(u.Key)).
			Strs("raw", u.Raw).
			Int("count", u.Count).
			Strs("sample_ids", u.SampleIDs).
			Msg("Subcategory label has no canonical mapping")
	}
	if len(r.Unmapped) > 0 {
		logging.Info().
			Int("items", r.Items).
			Int("mapped", r.Mapped).
			Int("unmapped_labels", len(r.Unmapped)).
			Msg("Subcategory audit finished")
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
