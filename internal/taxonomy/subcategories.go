// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package taxonomy

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tomtom215/recomendador/internal/models"
)

// Subcategory is a canonical key paired with its label in one language.
type Subcategory struct {
	Key   Key    `json:"key"`
	Label string `json:"label"`
}

// Subcategories returns the subcategories offered for cat in lang. For
// documentaries the list is discovered from items; other categories use the
// static vocabulary and ignore items.
func Subcategories(cat models.Category, lang models.Lang, items []models.CatalogItem) []Subcategory {
	if cat == models.CategoryDocumentaries {
		return DiscoverSubcategories(cat, lang, items)
	}

	keys := staticSubcategories[cat]
	out := make([]Subcategory, 0, len(keys))
	for _, k := range keys {
		out = append(out, Subcategory{Key: k, Label: FromCanonical(k, lang)})
	}
	return out
}

// DiscoverSubcategories scans items of cat for distinct canonical
// subcategories and sorts them by label using lang's collation.
func DiscoverSubcategories(cat models.Category, lang models.Lang, items []models.CatalogItem) []Subcategory {
	seen := make(map[Key]struct{})
	out := make([]Subcategory, 0)
	for i := range items {
		if items[i].Category != cat || items[i].Subcategory == "" {
			continue
		}
		k := ToCanonical(items[i].Subcategory)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, Subcategory{Key: k, Label: FromCanonical(k, lang)})
	}

	tag := lang.Tag()
	if tag == language.Und {
		tag = language.Spanish
	}
	c := collate.New(tag, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		if r := c.CompareString(out[i].Label, out[j].Label); r != 0 {
			return r < 0
		}
		return out[i].Key < out[j].Key
	})
	return out
}
