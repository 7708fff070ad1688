// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package navigation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/recomendador/internal/models"
)

// ErrNotOverlay is returned by ParseOverlay for views that are not overlays.
var ErrNotOverlay = errors.New("view is not an overlay")

// View is one screen of the application.
type View string

const (
	ViewHome          View = "home"
	ViewCategories    View = "categories"
	ViewSubcategories View = "subcategories"
	ViewDetail        View = "detail"
	ViewCoffee        View = "coffee"
	ViewHowToDownload View = "howToDownload"
	ViewNotFound      View = "notFound"
)

// IsOverlay reports whether v covers another view and returns to it.
func (v View) IsOverlay() bool {
	return v == ViewCoffee || v == ViewHowToDownload
}

// ParseOverlay accepts "coffee" or "howToDownload" (case-insensitive).
func ParseOverlay(s string) (View, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case strings.ToLower(string(ViewCoffee)):
		return ViewCoffee, nil
	case strings.ToLower(string(ViewHowToDownload)), "how-to-download":
		return ViewHowToDownload, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrNotOverlay, s)
	}
}

// State is the navigation state. The zero value behaves like New().
type State struct {
	current      View
	selectedItem models.ItemRef
	lastCategory models.Category
	previousView View
}

// New returns the entry state: home with no history.
func New() State {
	return State{current: ViewHome}
}

// Current returns the active view.
func (s State) Current() View {
	if s.current == "" {
		return ViewHome
	}
	return s.current
}

// SelectedItem returns the item shown in detail, zero when none.
func (s State) SelectedItem() models.ItemRef { return s.selectedItem }

// LastCategory returns the back target of a detail view, "" when none.
func (s State) LastCategory() models.Category { return s.lastCategory }

// PreviousView returns the view an active overlay returns to, "" when no
// overlay is open.
func (s State) PreviousView() View { return s.previousView }

// GoHome moves to home and forgets lastCategory, the selected item and any
// overlay.
func (s State) GoHome() State {
	return New()
}

// ShowCategories moves to the category list, closing any overlay.
func (s State) ShowCategories() State {
	s.current = ViewCategories
	s.selectedItem = models.ItemRef{}
	s.previousView = ""
	return s
}

// EnterCategory moves to the listing of cat and records it as lastCategory.
func (s State) EnterCategory(cat models.Category) State {
	s.current = ViewSubcategories
	s.lastCategory = cat
	s.selectedItem = models.ItemRef{}
	s.previousView = ""
	return s
}

// OpenItem moves to the detail of ref. lastCategory is left untouched.
func (s State) OpenItem(ref models.ItemRef) State {
	s.current = ViewDetail
	s.selectedItem = ref
	s.previousView = ""
	return s
}

// NotFound moves to the not-found view.
func (s State) NotFound() State {
	s.current = ViewNotFound
	s.selectedItem = models.ItemRef{}
	s.previousView = ""
	return s
}

// OpenOverlay shows an overlay over the current view. Opening an overlay
// while another is shown keeps the original return target. Non-overlay
// views leave the state unchanged.
func (s State) OpenOverlay(v View) State {
	if !v.IsOverlay() {
		return s
	}
	if !s.Current().IsOverlay() {
		s.previousView = s.Current()
	}
	s.current = v
	return s
}

// CloseOverlay returns to the view under the overlay. Without an open
// overlay it is a no-op.
func (s State) CloseOverlay() State {
	if !s.Current().IsOverlay() {
		return s
	}
	back := s.previousView
	if back == "" {
		back = ViewHome
	}
	s.current = back
	s.previousView = ""
	return s
}

// Back computes the "back" target of the current view:
//
//	overlay       -> the covered view
//	detail        -> subcategories of lastCategory, or categories
//	subcategories -> categories
//	anything else -> home
func (s State) Back() State {
	switch s.Current() {
	case ViewCoffee, ViewHowToDownload:
		return s.CloseOverlay()
	case ViewDetail:
		s.selectedItem = models.ItemRef{}
		if s.lastCategory != "" {
			s.current = ViewSubcategories
		} else {
			s.current = ViewCategories
		}
		return s
	case ViewSubcategories:
		s.current = ViewCategories
		return s
	default:
		return s.GoHome()
	}
}

type stateJSON struct {
	CurrentView    View            `json:"currentView"`
	SelectedItemID *models.ItemRef `json:"selectedItemId"`
	LastCategory   models.Category `json:"lastCategory"`
	PreviousView   View            `json:"previousView,omitempty"`
}

// MarshalJSON exposes the state read-only to observers.
func (s State) MarshalJSON() ([]byte, error) {
	out := stateJSON{
		CurrentView:  s.Current(),
		LastCategory: s.lastCategory,
		PreviousView: s.previousView,
	}
	if !s.selectedItem.IsZero() {
		ref := s.selectedItem
		out.SelectedItemID = &ref
	}
	return json.Marshal(out)
}
