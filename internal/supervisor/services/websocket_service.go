// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package services

import (
	"context"
)

// ContextHub is satisfied by *websocket.Hub.
type ContextHub interface {
	RunWithContext(ctx context.Context) error
}

// WebSocketHubService runs the websocket hub under suture.
//
// RunWithContext already has the Serve shape, so the wrapper only adds the
// name shown in supervisor events. When the hub's context ends, every
// connected client receives a close frame and Serve returns ctx.Err().
//
// Example usage:
//
//	hub := websocket.NewHub()
//	unsubscribe := sess.Subscribe(hub.Observe)
//	defer unsubscribe()
//	tree.AddMessagingService(services.NewWebSocketHubService(hub))
type WebSocketHubService struct {
	hub  ContextHub
	name string
}

// NewWebSocketHubService wraps hub.
func NewWebSocketHubService(hub ContextHub) *WebSocketHubService {
	return &WebSocketHubService{
		hub:  hub,
		name: "websocket-hub",
	}
}

// Serve implements suture.Service.
func (w *WebSocketHubService) Serve(ctx context.Context) error {
	return w.hub.RunWithContext(ctx)
}

// String names the service in supervisor events.
func (w *WebSocketHubService) String() string {
	return w.name
}
