// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/recomendador/internal/models"
	"github.com/tomtom215/recomendador/internal/navigation"
	"github.com/tomtom215/recomendador/internal/session"
)

// transition adapts a parameterless session transition to a handler that
// answers with the resulting state.
func (h *Handler) transition(fn func(*session.Session, context.Context) session.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteSuccess(w, r, fn(h.session, r.Context()))
	}
}

// GoHome handles POST /navigation/home.
func (h *Handler) GoHome(w http.ResponseWriter, r *http.Request) {
	h.transition((*session.Session).GoHome)(w, r)
}

// ShowCategories handles POST /navigation/categories.
func (h *Handler) ShowCategories(w http.ResponseWriter, r *http.Request) {
	h.transition((*session.Session).ShowCategories)(w, r)
}

// Back handles POST /navigation/back.
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	h.transition((*session.Session).Back)(w, r)
}

// NotFound handles POST /navigation/not-found.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.transition((*session.Session).NotFound)(w, r)
}

// CloseOverlay handles POST /navigation/overlay/close.
func (h *Handler) CloseOverlay(w http.ResponseWriter, r *http.Request) {
	h.transition((*session.Session).CloseOverlay)(w, r)
}

// SelectCategory handles POST /navigation/category/{category}.
func (h *Handler) SelectCategory(w http.ResponseWriter, r *http.Request) {
	cat, ok := h.categoryParam(w, r)
	if !ok {
		return
	}
	WriteSuccess(w, r, h.session.SelectCategory(r.Context(), cat))
}

// OpenItem handles POST /navigation/item/{category}/{id}. An unknown item
// still moves the session to notFound; the response is 404 with the new
// state as details.
func (h *Handler) OpenItem(w http.ResponseWriter, r *http.Request) {
	cat, ok := h.categoryParam(w, r)
	if !ok {
		return
	}
	ref := models.ItemRef{Category: cat, ID: chi.URLParam(r, "id")}
	st, found := h.session.OpenItem(r.Context(), ref)
	if !found {
		NewResponseWriter(w, r).ErrorWithDetails(http.StatusNotFound, ErrCodeNotFound, "Item not found", st)
		return
	}
	WriteSuccess(w, r, st)
}

// OpenOverlay handles POST /navigation/overlay/{overlay}.
func (h *Handler) OpenOverlay(w http.ResponseWriter, r *http.Request) {
	v, err := navigation.ParseOverlay(chi.URLParam(r, "overlay"))
	if err != nil {
		WriteBadRequest(w, r, err.Error())
		return
	}
	st, err := h.session.OpenOverlay(r.Context(), v)
	if err != nil {
		WriteBadRequest(w, r, err.Error())
		return
	}
	WriteSuccess(w, r, st)
}

// SelectSubcategory handles POST /filters/subcategory.
func (h *Handler) SelectSubcategory(w http.ResponseWriter, r *http.Request) {
	var req SubcategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	WriteSuccess(w, r, h.session.SelectSubcategory(r.Context(), req.Subcategory))
}

// ToggleMasterpiece handles POST /filters/masterpiece.
func (h *Handler) ToggleMasterpiece(w http.ResponseWriter, r *http.Request) {
	h.transition((*session.Session).ToggleMasterpiece)(w, r)
}

// ToggleRegionalCinema handles POST /filters/regional.
func (h *Handler) ToggleRegionalCinema(w http.ResponseWriter, r *http.Request) {
	h.transition((*session.Session).ToggleRegionalCinema)(w, r)
}

// ResetFilters handles POST /filters/reset. The session also returns home.
func (h *Handler) ResetFilters(w http.ResponseWriter, r *http.Request) {
	h.transition((*session.Session).ResetFilters)(w, r)
}

// TogglePodcastLanguage handles POST /filters/podcast-language/{lang}.
func (h *Handler) TogglePodcastLanguage(w http.ResponseWriter, r *http.Request) {
	lang, ok := h.langParam(w, r)
	if !ok {
		return
	}
	WriteSuccess(w, r, h.session.TogglePodcastLanguage(r.Context(), lang))
}

// ToggleDocumentaryLanguage handles POST /filters/documentary-language/{lang}.
func (h *Handler) ToggleDocumentaryLanguage(w http.ResponseWriter, r *http.Request) {
	lang, ok := h.langParam(w, r)
	if !ok {
		return
	}
	WriteSuccess(w, r, h.session.ToggleDocumentaryLanguage(r.Context(), lang))
}

// SetLanguage handles PUT /language/{lang}. Unsupported languages answer
// 400 and leave the session unchanged.
func (h *Handler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	lang, ok := h.langParam(w, r)
	if !ok {
		return
	}
	st, ok := h.session.SetLanguage(r.Context(), lang)
	if !ok {
		NewResponseWriter(w, r).ErrorWithDetails(http.StatusBadRequest, ErrCodeUnsupportedLang,
			"Unsupported language: "+string(lang), h.session.SupportedLanguages())
		return
	}
	WriteSuccess(w, r, st)
}

func (h *Handler) langParam(w http.ResponseWriter, r *http.Request) (models.Lang, bool) {
	p := languageParam{Lang: chi.URLParam(r, "lang")}
	if !validateRequest(w, r, &p) {
		return "", false
	}
	return models.NormalizeLang(p.Lang), true
}
