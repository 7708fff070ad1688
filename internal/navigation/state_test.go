// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package navigation

import (
	"errors"
	"testing"

	"github.com/tomtom215/recomendador/internal/models"
)

var itemX = models.ItemRef{Category: models.CategoryMovies, ID: "x"}

func TestBackFromDetailReturnsToCategory(t *testing.T) {
	t.Parallel()

	s := New().ShowCategories().EnterCategory(models.CategoryMovies).OpenItem(itemX)
	if s.Current() != ViewDetail || s.SelectedItem() != itemX {
		t.Fatalf("after OpenItem: %v %v", s.Current(), s.SelectedItem())
	}

	s = s.Back()
	if s.Current() != ViewSubcategories {
		t.Errorf("Back() view = %v, want subcategories", s.Current())
	}
	if s.LastCategory() != models.CategoryMovies {
		t.Errorf("LastCategory() = %v, want movies", s.LastCategory())
	}
	if !s.SelectedItem().IsZero() {
		t.Error("selected item should be cleared on back")
	}
}

func TestBackFromDetailWithoutCategory(t *testing.T) {
	t.Parallel()

	s := New().OpenItem(itemX).Back()
	if s.Current() != ViewCategories {
		t.Errorf("Back() view = %v, want categories", s.Current())
	}
}

func TestDetailDoesNotOverwriteLastCategory(t *testing.T) {
	t.Parallel()

	other := models.ItemRef{Category: models.CategoryBooks, ID: "y"}
	s := New().EnterCategory(models.CategoryMovies).OpenItem(itemX).OpenItem(other)
	if s.LastCategory() != models.CategoryMovies {
		t.Errorf("LastCategory() = %v, want movies", s.LastCategory())
	}
	if s.Back().Current() != ViewSubcategories {
		t.Error("a second detail jump must not push a new back target")
	}
}

func TestGoHomeClearsHistory(t *testing.T) {
	t.Parallel()

	s := New().EnterCategory(models.CategoryMusic).OpenItem(itemX).OpenOverlay(ViewCoffee).GoHome()
	if s.Current() != ViewHome {
		t.Errorf("Current() = %v", s.Current())
	}
	if s.LastCategory() != "" || !s.SelectedItem().IsZero() || s.PreviousView() != "" {
		t.Errorf("GoHome left history: %+v", s)
	}
}

func TestOverlays(t *testing.T) {
	t.Parallel()

	base := New().EnterCategory(models.CategoryMovies).OpenItem(itemX)

	s := base.OpenOverlay(ViewCoffee)
	if s.Current() != ViewCoffee || s.PreviousView() != ViewDetail {
		t.Fatalf("OpenOverlay: %v prev=%v", s.Current(), s.PreviousView())
	}

	s = s.OpenOverlay(ViewHowToDownload)
	if s.PreviousView() != ViewDetail {
		t.Errorf("stacked overlay should keep original previous view, got %v", s.PreviousView())
	}

	s = s.Back()
	if s.Current() != ViewDetail || s.SelectedItem() != itemX {
		t.Errorf("closing overlay: %v %v", s.Current(), s.SelectedItem())
	}
	if s.PreviousView() != "" {
		t.Errorf("PreviousView() = %v after close", s.PreviousView())
	}

	if got := base.CloseOverlay(); got != base {
		t.Error("CloseOverlay without overlay should be a no-op")
	}
	if got := base.OpenOverlay(ViewHome); got != base {
		t.Error("OpenOverlay with a non-overlay view should be a no-op")
	}
}

func TestBackTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from State
		want View
	}{
		{"home stays home", New(), ViewHome},
		{"categories to home", New().ShowCategories(), ViewHome},
		{"subcategories to categories", New().EnterCategory(models.CategoryBooks), ViewCategories},
		{"not found to home", New().NotFound(), ViewHome},
		{"overlay on home", New().OpenOverlay(ViewCoffee), ViewHome},
		{"zero value", State{}, ViewHome},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.from.Back().Current(); got != tt.want {
				t.Errorf("Back() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseOverlay(t *testing.T) {
	t.Parallel()

	if v, err := ParseOverlay("Coffee"); err != nil || v != ViewCoffee {
		t.Errorf("ParseOverlay(Coffee) = %v, %v", v, err)
	}
	if v, err := ParseOverlay("howtodownload"); err != nil || v != ViewHowToDownload {
		t.Errorf("ParseOverlay(howtodownload) = %v, %v", v, err)
	}
	if _, err := ParseOverlay("detail"); !errors.Is(err, ErrNotOverlay) {
		t.Errorf("ParseOverlay(detail) error = %v", err)
	}
}
