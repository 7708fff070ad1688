// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package websocket

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/goccy/go-json"

	"github.com/tomtom215/recomendador/internal/logging"
	"github.com/tomtom215/recomendador/internal/metrics"
	"github.com/tomtom215/recomendador/internal/session"
)

// ShutdownReason identifies why the hub stopped.
type ShutdownReason string

const (
	// ShutdownReasonContextCanceled is the normal stop path (SIGTERM).
	ShutdownReasonContextCanceled ShutdownReason = "context_canceled"

	// ShutdownReasonContextDeadline means the parent context timed out.
	ShutdownReasonContextDeadline ShutdownReason = "context_deadline"
)

// Message types.
const (
	MessageTypeState = "state"
	MessageTypePing  = "ping"
	MessageTypePong  = "pong"
)

// Message is one frame sent to clients.
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data"`

	// Sequence orders state messages; see session.State.Sequence. It is
	// zero for every other type.
	Sequence uint64 `json:"-"`
}

// StateMessage wraps a session state.
func StateMessage(st session.State) Message {
	return Message{Type: MessageTypeState, Data: st, Sequence: st.Sequence}
}

// Hub maintains the active clients and broadcasts messages to them.
//
// A hub serves one session. It remembers the newest state message it has
// broadcast: state messages older than that are dropped, and a client that
// registers after a broadcast receives it unless its greeting was newer.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan Message
	Register   chan *Client
	Unregister chan *Client
	mu         sync.RWMutex

	// latest is owned by the RunWithContext goroutine.
	latest Message
}

// NewHub creates a Hub. Call RunWithContext to start it.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Message, 256),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// RunWithContext serves registrations and broadcasts until ctx ends, then
// closes every client and returns ctx.Err().
//
// Shutdown is checked first and lifecycle events are drained before
// broadcasts, so a client registered before a message always receives it.
func (h *Hub) RunWithContext(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()
		default:
		}

		select {
		case c := <-h.Register:
			h.add(c)
			continue
		case c := <-h.Unregister:
			h.remove(c)
			continue
		default:
		}

		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()
		case c := <-h.Register:
			h.add(c)
		case c := <-h.Unregister:
			h.remove(c)
		case msg := <-h.broadcast:
			h.broadcastToClients(msg)
		}
	}
}

func (h *Hub) add(c *Client) {
	if h.latest.Sequence > 0 {
		c.offerState(h.latest)
	}

	h.mu.Lock()
	h.clients[c] = true
	n := len(h.clients)
	h.mu.Unlock()

	metrics.WebSocketConnections.Set(float64(n))
	logging.Debug().Uint64("client_id", c.id).Int("total_clients", n).Msg("websocket client connected")
}

func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	n := len(h.clients)
	h.mu.Unlock()

	metrics.WebSocketConnections.Set(float64(n))
	logging.Debug().Uint64("client_id", c.id).Int("total_clients", n).Msg("websocket client disconnected")
}

// shutdown closes every client. Cancellation is the normal stop path, so
// it is logged at info without an error field.
func (h *Hub) shutdown(ctx context.Context) {
	n := h.GetClientCount()
	h.closeAllClients()

	logging.Info().
		Str("component", "websocket-hub").
		Str("reason", string(getShutdownReason(ctx))).
		Int("clients_closed", n).
		Msg("websocket hub stopped")
}

func getShutdownReason(ctx context.Context) ShutdownReason {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ShutdownReasonContextDeadline
	}
	return ShutdownReasonContextCanceled
}

// sortedClients returns clients in id order. Callers hold mu.
func (h *Hub) sortedClients() []*Client {
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].id < clients[j].id })
	return clients
}

// broadcastToClients delivers msg in client id order, dropping clients
// whose buffer is full.
func (h *Hub) broadcastToClients(msg Message) {
	if msg.Type == MessageTypeState {
		if msg.Sequence <= h.latest.Sequence {
			logging.Debug().Uint64("sequence", msg.Sequence).Msg("stale session state not broadcast")
			return
		}
		h.latest = msg
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	var dropped []*Client
	for _, c := range h.sortedClients() {
		if !c.offer(msg) {
			dropped = append(dropped, c)
		}
	}
	for _, c := range dropped {
		close(c.send)
		delete(h.clients, c)
		metrics.WebSocketDropped.Inc()
		logging.Warn().Uint64("client_id", c.id).Msg("websocket client too slow, dropped")
	}
	if len(dropped) > 0 {
		metrics.WebSocketConnections.Set(float64(len(h.clients)))
	}
	metrics.WebSocketMessages.WithLabelValues(msg.Type).Inc()
}

func (h *Hub) closeAllClients() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, c := range h.sortedClients() {
		close(c.send)
		delete(h.clients, c)
	}
	metrics.WebSocketConnections.Set(0)
}

// BroadcastJSON queues a message for every client. It never blocks; when
// the queue is full the message is dropped.
func (h *Hub) BroadcastJSON(messageType string, data any) {
	select {
	case h.broadcast <- Message{Type: messageType, Data: data}:
	default:
		logging.Warn().Str("message_type", messageType).Msg("broadcast channel full, dropping message")
	}
}

// Observe broadcasts a session state. It matches session.Observer.
func (h *Hub) Observe(st session.State) {
	msg := StateMessage(st)
	select {
	case h.broadcast <- msg:
	default:
		logging.Warn().Uint64("sequence", st.Sequence).Msg("broadcast channel full, dropping session state")
	}
}

// GetClientCount returns the number of connected clients.
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// MarshalMessage encodes msg as sent on the wire.
func MarshalMessage(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}
