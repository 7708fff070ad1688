// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/recomendador/internal/i18n"
	"github.com/tomtom215/recomendador/internal/logging"
	"github.com/tomtom215/recomendador/internal/session"
	ws "github.com/tomtom215/recomendador/internal/websocket"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, websocket upgrade
//   - handlers_catalog.go: read endpoints over the session state
//   - handlers_transitions.go: navigation, filter and language transitions
//   - handlers_health.go: health endpoint
type Handler struct {
	session     *session.Session
	dict        *i18n.Dictionary
	wsHub       *ws.Hub
	corsOrigins []string
	startTime   time.Time
}

// HandlerOptions carries the optional collaborators of a Handler.
type HandlerOptions struct {
	// Dictionary supplies category labels; nil labels categories by id.
	Dictionary *i18n.Dictionary

	// Hub enables /api/v1/ws; nil answers 503.
	Hub *ws.Hub

	// CORSOrigins bounds websocket origins; "*" allows any.
	CORSOrigins []string
}

// NewHandler creates a handler over sess.
func NewHandler(sess *session.Session, opts HandlerOptions) *Handler {
	dict := opts.Dictionary
	if dict == nil {
		dict = i18n.NewDictionary(sess.DefaultLanguage())
	}
	return &Handler{
		session:     sess,
		dict:        dict,
		wsHub:       opts.Hub,
		corsOrigins: opts.CORSOrigins,
		startTime:   time.Now(),
	}
}

// getUpgrader creates a WebSocket upgrader with origin checking and a
// handshake timeout.
func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin validates WebSocket connection origins. Browsers
// always send Origin, so a missing header is rejected.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		logging.Warn().Msg("WebSocket connection rejected: missing Origin header")
		return false
	}

	for _, allowed := range h.corsOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}

	logging.Warn().Str("origin", sanitizeLogValue(origin)).Msg("WebSocket connection rejected from unauthorized origin")
	return false
}

// WebSocket upgrades the connection and streams session states.
//
// The current state is queued before the client joins the hub, so it always
// arrives first. A transition broadcast between reading that state and the
// registration is replayed by the hub on registration; states are ordered
// by sequence, so the client never ends on an older one.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil {
		logging.Warn().Msg("WebSocket connection rejected: hub not initialized")
		NewResponseWriter(w, r).ServiceUnavailable("WebSocket service unavailable")
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.CtxErr(r.Context(), err).Msg("WebSocket upgrade error")
		return
	}

	client := ws.NewClient(h.wsHub, conn)
	client.EnqueueState(h.session.State())
	h.wsHub.Register <- client
	client.Start()
}

// sanitizeLogValue strips control characters and caps the length of a
// client-supplied value before it is logged.
func sanitizeLogValue(s string) string {
	const maxLen = 200
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			continue
		}
		out = append(out, r)
		if len(out) == maxLen {
			break
		}
	}
	return string(out)
}
