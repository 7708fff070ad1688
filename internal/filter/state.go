// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package filter

import (
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/recomendador/internal/models"
	"github.com/tomtom215/recomendador/internal/taxonomy"
)

// Sentinel subcategories request a cross-cutting filter instead of a
// taxonomy key.
const (
	SubcategoryMasterpieces   taxonomy.Key = "masterpieces-only"
	SubcategoryRegionalCinema taxonomy.Key = "regional-cinema"
)

// IsSentinel reports whether k is one of the reserved subcategories.
func IsSentinel(k taxonomy.Key) bool {
	return k == SubcategoryMasterpieces || k == SubcategoryRegionalCinema
}

// State is the filter/toggle state. The zero value is the default state.
// States are comparable with ==.
type State struct {
	category      models.Category
	subcategory   taxonomy.Key
	masterpiece   bool
	regional      bool
	podcastLangs  LanguageSet
	documentLangs LanguageSet
}

// New returns the default state: nothing selected, all toggles off.
func New() State {
	return State{}
}

// Category returns the selected category, "" when none.
func (s State) Category() models.Category { return s.category }

// Subcategory returns the active canonical key or sentinel, "" when none.
func (s State) Subcategory() taxonomy.Key { return s.subcategory }

// MasterpieceActive reports the masterpiece toggle.
func (s State) MasterpieceActive() bool { return s.masterpiece }

// RegionalCinemaActive reports the regional-cinema toggle.
func (s State) RegionalCinemaActive() bool { return s.regional }

// PodcastLanguages returns the podcast language selection.
func (s State) PodcastLanguages() LanguageSet { return s.podcastLangs }

// DocumentaryLanguages returns the documentary language selection.
func (s State) DocumentaryLanguages() LanguageSet { return s.documentLangs }

// LanguagesFor returns the language selection that gates cat, and false for
// categories that are not language filtered.
func (s State) LanguagesFor(cat models.Category) (LanguageSet, bool) {
	switch cat {
	case models.CategoryPodcast:
		return s.podcastLangs, true
	case models.CategoryDocumentaries:
		return s.documentLangs, true
	default:
		return LanguageSet{}, false
	}
}

// SetCategory selects cat ("" clears the selection). The subcategory and the
// masterpiece and regional toggles are always reset. A language selection is
// kept only when cat is the category it belongs to.
func (s State) SetCategory(cat models.Category) State {
	next := State{
		category:      cat,
		podcastLangs:  s.podcastLangs,
		documentLangs: s.documentLangs,
	}
	if cat != models.CategoryPodcast {
		next.podcastLangs = LanguageSet{}
	}
	if cat != models.CategoryDocumentaries {
		next.documentLangs = LanguageSet{}
	}
	return next
}

// SetSubcategory activates a label (canonicalized), a sentinel, or clears
// the subcategory when sub is blank.
func (s State) SetSubcategory(sub string) State {
	sub = strings.TrimSpace(sub)
	switch {
	case sub == "":
		s.subcategory = ""
	case IsSentinel(taxonomy.Key(strings.ToLower(sub))):
		s.subcategory = taxonomy.Key(strings.ToLower(sub))
	default:
		s.subcategory = taxonomy.ToCanonical(sub)
	}
	return s
}

// ToggleMasterpiece flips the masterpiece toggle.
func (s State) ToggleMasterpiece() State {
	s.masterpiece = !s.masterpiece
	return s
}

// ToggleRegionalCinema flips the regional-cinema toggle.
func (s State) ToggleRegionalCinema() State {
	s.regional = !s.regional
	return s
}

// TogglePodcastLanguage applies single-select toggling to the podcast set.
func (s State) TogglePodcastLanguage(lang models.Lang) State {
	s.podcastLangs = s.podcastLangs.Toggle(lang)
	return s
}

// ToggleDocumentaryLanguage applies single-select toggling to the documentary set.
func (s State) ToggleDocumentaryLanguage(lang models.Lang) State {
	s.documentLangs = s.documentLangs.Toggle(lang)
	return s
}

// Reset returns the default state.
func (s State) Reset() State {
	return New()
}

type stateJSON struct {
	SelectedCategory           models.Category `json:"selectedCategory"`
	ActiveSubcategory          taxonomy.Key    `json:"activeSubcategory"`
	IsMasterpieceActive        bool            `json:"isMasterpieceActive"`
	IsRegionalCinemaActive     bool            `json:"isRegionalCinemaActive"`
	ActivePodcastLanguages     LanguageSet     `json:"activePodcastLanguages"`
	ActiveDocumentaryLanguages LanguageSet     `json:"activeDocumentaryLanguages"`
}

// MarshalJSON exposes the state read-only to observers.
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(stateJSON{
		SelectedCategory:           s.category,
		ActiveSubcategory:          s.subcategory,
		IsMasterpieceActive:        s.masterpiece,
		IsRegionalCinemaActive:     s.regional,
		ActivePodcastLanguages:     s.podcastLangs,
		ActiveDocumentaryLanguages: s.documentLangs,
	})
}
