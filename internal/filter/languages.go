// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package filter

import (
	"github.com/goccy/go-json"

	"github.com/tomtom215/recomendador/internal/models"
)

// LanguageSet is a single-select set: empty or exactly one language.
type LanguageSet struct {
	lang models.Lang
}

// LanguageSetOf builds a set holding the first non-empty language given.
func LanguageSetOf(langs ...models.Lang) LanguageSet {
	for _, l := range langs {
		if n := models.NormalizeLang(string(l)); n != "" {
			return LanguageSet{lang: n}
		}
	}
	return LanguageSet{}
}

// Toggle deselects lang if it is the current member, otherwise replaces the
// member with lang. An empty lang leaves the set unchanged.
func (s LanguageSet) Toggle(lang models.Lang) LanguageSet {
	lang = models.NormalizeLang(string(lang))
	if lang == "" {
		return s
	}
	if s.lang == lang {
		return LanguageSet{}
	}
	return LanguageSet{lang: lang}
}

// Contains reports membership.
func (s LanguageSet) Contains(lang models.Lang) bool {
	return s.lang != "" && s.lang == lang
}

// IsEmpty reports whether no language is selected.
func (s LanguageSet) IsEmpty() bool { return s.lang == "" }

// Len is 0 or 1.
func (s LanguageSet) Len() int {
	if s.lang == "" {
		return 0
	}
	return 1
}

// Values returns the members; never nil.
func (s LanguageSet) Values() []models.Lang {
	if s.lang == "" {
		return []models.Lang{}
	}
	return []models.Lang{s.lang}
}

// MarshalJSON encodes the set as an array.
func (s LanguageSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}
