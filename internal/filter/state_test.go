// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package filter

import (
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/recomendador/internal/models"
)

func TestSetCategory_ResetsSubcategoryAndToggles(t *testing.T) {
	t.Parallel()

	s := New().
		SetCategory(models.CategoryMovies).
		SetSubcategory("acción").
		ToggleMasterpiece().
		ToggleRegionalCinema()

	if s.Subcategory() != "action" {
		t.Fatalf("Subcategory() = %q, want action", s.Subcategory())
	}

	s = s.SetCategory(models.CategoryBooks)
	if s.Category() != models.CategoryBooks {
		t.Errorf("Category() = %q", s.Category())
	}
	if s.Subcategory() != "" {
		t.Errorf("Subcategory() = %q, want cleared", s.Subcategory())
	}
	if s.MasterpieceActive() || s.RegionalCinemaActive() {
		t.Error("toggles should be cleared on category switch")
	}

	same := New().SetCategory(models.CategoryMovies).SetSubcategory("drama").SetCategory(models.CategoryMovies)
	if same.Subcategory() != "" {
		t.Error("re-selecting the same category should still reset the subcategory")
	}
}

func TestSetCategory_LanguageSetsFollowCategory(t *testing.T) {
	t.Parallel()

	s := New().SetCategory(models.CategoryPodcast).TogglePodcastLanguage("es")
	if !s.PodcastLanguages().Contains("es") {
		t.Fatal("podcast language not set")
	}

	if kept := s.SetCategory(models.CategoryPodcast); !kept.PodcastLanguages().Contains("es") {
		t.Error("podcast language should survive re-selecting podcast")
	}
	if cleared := s.SetCategory(models.CategoryMovies); !cleared.PodcastLanguages().IsEmpty() {
		t.Error("podcast language should be cleared when leaving podcast")
	}

	d := New().SetCategory(models.CategoryDocumentaries).ToggleDocumentaryLanguage("en")
	if cleared := d.SetCategory(models.CategoryPodcast); !cleared.DocumentaryLanguages().IsEmpty() {
		t.Error("documentary language should be cleared when leaving documentaries")
	}
}

func TestTogglePodcastLanguage_SingleSelect(t *testing.T) {
	t.Parallel()

	s := New()
	steps := []struct {
		toggle models.Lang
		want   []models.Lang
	}{
		{"es", []models.Lang{"es"}},
		{"en", []models.Lang{"en"}},
		{"en", []models.Lang{}},
		{"es-ES", []models.Lang{"es"}},
		{"", []models.Lang{"es"}},
	}
	for i, step := range steps {
		s = s.TogglePodcastLanguage(step.toggle)
		got := s.PodcastLanguages().Values()
		if len(got) != len(step.want) {
			t.Fatalf("step %d: Values() = %v, want %v", i, got, step.want)
		}
		for j := range got {
			if got[j] != step.want[j] {
				t.Errorf("step %d: Values() = %v, want %v", i, got, step.want)
			}
		}
		if s.PodcastLanguages().Len() > 1 {
			t.Fatalf("step %d: cardinality %d", i, s.PodcastLanguages().Len())
		}
	}
}

func TestSetSubcategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Terror", "horror"},
		{"masterpieces-only", string(SubcategoryMasterpieces)},
		{"Regional-Cinema", string(SubcategoryRegionalCinema)},
		{"  ", ""},
		{"Cyberpunk", "cyberpunk"},
	}
	for _, tt := range tests {
		got := New().SetSubcategory(tt.in).Subcategory()
		if string(got) != tt.want {
			t.Errorf("SetSubcategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSetSubcategory_DoesNotTouchMasterpieceFlag(t *testing.T) {
	t.Parallel()

	s := New().ToggleMasterpiece().SetSubcategory("action")
	if !s.MasterpieceActive() || s.Subcategory() != "action" {
		t.Error("subcategory and masterpiece flag should coexist")
	}
}

func TestReset(t *testing.T) {
	t.Parallel()

	s := New().SetCategory(models.CategoryDocumentaries).
		ToggleDocumentaryLanguage("es").
		SetSubcategory("naturaleza").
		ToggleMasterpiece()
	if s.Reset() != New() {
		t.Error("Reset() should equal New()")
	}
}

func TestState_MarshalJSON(t *testing.T) {
	t.Parallel()

	s := New().SetCategory(models.CategoryPodcast).TogglePodcastLanguage("en")
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded["selectedCategory"] != "podcast" {
		t.Errorf("selectedCategory = %v", decoded["selectedCategory"])
	}
	langs, ok := decoded["activePodcastLanguages"].([]any)
	if !ok || len(langs) != 1 || langs[0] != "en" {
		t.Errorf("activePodcastLanguages = %v", decoded["activePodcastLanguages"])
	}
	docs, ok := decoded["activeDocumentaryLanguages"].([]any)
	if !ok || len(docs) != 0 {
		t.Errorf("activeDocumentaryLanguages = %v", decoded["activeDocumentaryLanguages"])
	}
}
