// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router sets up HTTP routes using Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil mw uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	h := router.handler
	r := chi.NewRouter()

	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, r, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).Error(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	})

	r.With(APISecurityHeaders()).Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(PrometheusMetrics())
		r.Use(ContentLanguage(h.session.Language))

		r.Get("/state", h.State)

		// Listings can carry the whole catalog.
		r.Group(func(r chi.Router) {
			r.Use(chimiddleware.Compress(5, "application/json"))
			r.Get("/items", h.Items)
			r.Get("/picks", h.Picks)
			r.Get("/categories", h.Categories)
			r.Get("/categories/{category}/subcategories", h.Subcategories)
			r.Get("/items/{category}/{id}", h.Item)
		})

		r.Route("/navigation", func(r chi.Router) {
			r.Post("/home", h.GoHome)
			r.Post("/categories", h.ShowCategories)
			r.Post("/back", h.Back)
			r.Post("/not-found", h.NotFound)
			r.Post("/category/{category}", h.SelectCategory)
			r.Post("/item/{category}/{id}", h.OpenItem)
			r.Post("/overlay/close", h.CloseOverlay)
			r.Post("/overlay/{overlay}", h.OpenOverlay)
		})

		r.Route("/filters", func(r chi.Router) {
			r.Post("/subcategory", h.SelectSubcategory)
			r.Post("/masterpiece", h.ToggleMasterpiece)
			r.Post("/regional", h.ToggleRegionalCinema)
			r.Post("/reset", h.ResetFilters)
			r.Post("/podcast-language/{lang}", h.TogglePodcastLanguage)
			r.Post("/documentary-language/{lang}", h.ToggleDocumentaryLanguage)
		})

		r.Put("/language/{lang}", h.SetLanguage)
		r.Get("/ws", h.WebSocket)
	})

	return r
}
