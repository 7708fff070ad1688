// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package catalog

import (
	"github.com/tomtom215/recomendador/internal/filter"
	"github.com/tomtom215/recomendador/internal/i18n"
	"github.com/tomtom215/recomendador/internal/models"
	"github.com/tomtom215/recomendador/internal/taxonomy"
)

// DefaultRegionalTags are the tag values marking regional cinema.
var DefaultRegionalTags = []string{"regional-cinema", "cine regional", "regional cinema"}

// RegionalMatcher decides whether an item carries the regional marker.
type RegionalMatcher struct {
	markers map[taxonomy.Key]struct{}
}

// NewRegionalMatcher normalizes tags the same way subcategory labels are
// normalized, so case, spacing and accents do not matter.
func NewRegionalMatcher(tags []string) RegionalMatcher {
	m := RegionalMatcher{markers: make(map[taxonomy.Key]struct{}, len(tags))}
	for _, t := range tags {
		if k := taxonomy.ToCanonical(t); k != "" {
			m.markers[k] = struct{}{}
		}
	}
	return m
}

// Match reports whether any tag of it, resolved in lang, is a marker.
func (m RegionalMatcher) Match(it *models.CatalogItem, lang models.Lang) bool {
	for _, tag := range it.Tags {
		if _, ok := m.markers[taxonomy.ToCanonical(i18n.Resolve(tag, lang, ""))]; ok {
			return true
		}
	}
	return false
}

var defaultMatcher = NewRegionalMatcher(DefaultRegionalTags)

// Project derives the visible items for state using DefaultRegionalTags.
func Project(items []models.CatalogItem, state filter.State, lang models.Lang) []models.CatalogItem {
	return project(items, state, lang, defaultMatcher)
}

// project runs the pipeline in order:
//
//  1. category (whole pool when none is selected)
//  2. subcategory: masterpieces sentinel, regional sentinel or canonical key
//  3. masterpiece flag, ANDed with stage 2
//  4. regional flag, ANDed as well
//  5. content language for podcasts and documentaries; an empty selection
//     empties the result
//
// The result is never nil.
func project(items []models.CatalogItem, state filter.State, lang models.Lang, regional RegionalMatcher) []models.CatalogItem {
	cat := state.Category()

	langs, gated := state.LanguagesFor(cat)
	if gated && langs.IsEmpty() {
		return []models.CatalogItem{}
	}

	sub := state.Subcategory()
	out := make([]models.CatalogItem, 0)
	for i := range items {
		it := &items[i]

		if cat != "" && it.Category != cat {
			continue
		}

		switch sub {
		case "":
		case filter.SubcategoryMasterpieces:
			if !it.Masterpiece {
				continue
			}
		case filter.SubcategoryRegionalCinema:
			if !regional.Match(it, lang) {
				continue
			}
		default:
			if it.Subcategory == "" || taxonomy.ToCanonical(it.Subcategory) != sub {
				continue
			}
		}

		if state.MasterpieceActive() && !it.Masterpiece {
			continue
		}
		if state.RegionalCinemaActive() && !regional.Match(it, lang) {
			continue
		}
		if gated && !langs.Contains(it.Language()) {
			continue
		}

		out = append(out, *it)
	}
	return out
}
