// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/recomendador/internal/i18n"
	"github.com/tomtom215/recomendador/internal/models"
	"github.com/tomtom215/recomendador/internal/taxonomy"
)

// ItemView is an item resolved for display in one language. The raw record
// travels along in Item.
type ItemView struct {
	Ref         models.ItemRef     `json:"ref"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Subcategory string             `json:"subcategory,omitempty"`
	Tags        []string           `json:"tags"`
	Masterpiece bool               `json:"masterpiece"`
	Item        models.CatalogItem `json:"item"`
}

// CategoryView is one entry of the category grid.
type CategoryView struct {
	ID    models.Category `json:"id"`
	Label string          `json:"label"`
	Count int             `json:"count"`
}

func newItemView(it models.CatalogItem, lang models.Lang) ItemView {
	v := ItemView{
		Ref:         it.Ref(),
		Title:       i18n.Resolve(it.Title, lang, it.ID),
		Description: i18n.Resolve(it.Description, lang, ""),
		Tags:        i18n.ResolveAll(it.Tags, lang),
		Masterpiece: it.Masterpiece,
		Item:        it,
	}
	if it.Subcategory != "" {
		v.Subcategory = taxonomy.FromCanonical(taxonomy.ToCanonical(it.Subcategory), lang)
	}
	return v
}

func itemViews(items []models.CatalogItem, lang models.Lang) []ItemView {
	out := make([]ItemView, 0, len(items))
	for _, it := range items {
		out = append(out, newItemView(it, lang))
	}
	return out
}

// State returns the current session state.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, h.session.State())
}

// Items returns the items visible under the current filters.
func (h *Handler) Items(w http.ResponseWriter, r *http.Request) {
	views := itemViews(h.session.Visible(), h.session.Language())
	NewResponseWriter(w, r).List(views, len(views))
}

// Picks returns the home daily picks.
func (h *Handler) Picks(w http.ResponseWriter, r *http.Request) {
	views := itemViews(h.session.DailyPicks(), h.session.Language())
	NewResponseWriter(w, r).List(views, len(views))
}

// Categories returns every category with its label and item count.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	lang := h.session.Language()
	counts := h.session.Counts()

	out := make([]CategoryView, 0, len(models.Categories))
	for _, c := range models.Categories {
		label, ok := h.dict.Lookup(lang, "categories."+string(c))
		if !ok {
			label = string(c)
		}
		out = append(out, CategoryView{ID: c, Label: label, Count: counts[string(c)]})
	}
	NewResponseWriter(w, r).List(out, len(out))
}

// Subcategories returns the subcategories of {category} in the session
// language.
func (h *Handler) Subcategories(w http.ResponseWriter, r *http.Request) {
	cat, ok := h.categoryParam(w, r)
	if !ok {
		return
	}
	subs := h.session.Subcategories(cat)
	NewResponseWriter(w, r).List(subs, len(subs))
}

// Item returns one item without moving the view.
func (h *Handler) Item(w http.ResponseWriter, r *http.Request) {
	cat, ok := h.categoryParam(w, r)
	if !ok {
		return
	}
	ref := models.ItemRef{Category: cat, ID: chi.URLParam(r, "id")}
	it, found := h.session.Item(ref)
	if !found {
		WriteNotFound(w, r, "Item not found: "+sanitizeLogValue(ref.String()))
		return
	}
	WriteSuccess(w, r, newItemView(it, h.session.Language()))
}

// categoryParam parses {category}, answering 400 when it is unknown.
func (h *Handler) categoryParam(w http.ResponseWriter, r *http.Request) (models.Category, bool) {
	cat, err := models.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		NewResponseWriter(w, r).Error(http.StatusBadRequest, ErrCodeUnknownCategory, err.Error())
		return "", false
	}
	return cat, true
}
