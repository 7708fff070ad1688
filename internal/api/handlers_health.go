// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the payload of GET /health.
type HealthStatus struct {
	Status          string  `json:"status"`
	CatalogSize     int     `json:"catalog_size"`
	CatalogRevision uint64  `json:"catalog_revision"`
	Language        string  `json:"language"`
	WebSocketPeers  int     `json:"websocket_clients"`
	Uptime          float64 `json:"uptime_seconds"`
}

// Health reports liveness. An empty catalog is "degraded" rather than an
// error: the session still serves navigation.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	st := h.session.State()

	status := "healthy"
	if st.CatalogSize == 0 {
		status = "degraded"
	}

	peers := 0
	if h.wsHub != nil {
		peers = h.wsHub.GetClientCount()
	}

	WriteSuccess(w, r, HealthStatus{
		Status:          status,
		CatalogSize:     st.CatalogSize,
		CatalogRevision: st.CatalogRevision,
		Language:        string(st.Language),
		WebSocketPeers:  peers,
		Uptime:          time.Since(h.startTime).Seconds(),
	})
}
