// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package websocket

import (
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/tomtom215/recomendador/internal/logging"
	"github.com/tomtom215/recomendador/internal/session"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
	sendBuffer     = 64
)

// clientIDCounter gives clients a stable broadcast order.
var clientIDCounter atomic.Uint64

// Client connects one websocket to the hub.
type Client struct {
	id   uint64
	hub  *Hub
	conn *websocket.Conn
	send chan Message

	// lastState is the sequence of the newest state queued. It is written
	// by the registering goroutine before Register and by the hub after.
	lastState uint64
}

// NewClient wraps conn. Queue the initial state with EnqueueState, send the
// client to hub.Register, then call Start.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		id:   clientIDCounter.Add(1),
		hub:  hub,
		conn: conn,
		send: make(chan Message, sendBuffer),
	}
}

// ID returns the client id.
func (c *Client) ID() uint64 {
	return c.id
}

// Enqueue queues msg for this client only. It reports false when the buffer
// is full.
func (c *Client) Enqueue(msg Message) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// EnqueueState queues st as the client's greeting.
func (c *Client) EnqueueState(st session.State) bool {
	return c.offerState(StateMessage(st))
}

// offer queues msg, skipping state messages not newer than the last one
// queued. It reports false only when the buffer is full.
func (c *Client) offer(msg Message) bool {
	if msg.Type == MessageTypeState {
		return c.offerState(msg)
	}
	return c.Enqueue(msg)
}

func (c *Client) offerState(msg Message) bool {
	if msg.Sequence != 0 && msg.Sequence <= c.lastState {
		return true
	}
	if !c.Enqueue(msg) {
		return false
	}
	c.lastState = msg.Sequence
	return true
}

// Start runs the read and write pumps.
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister <- c
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logging.Error().Err(err).Msg("failed to set read deadline")
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logging.Warn().Err(err).Uint64("client_id", c.id).Msg("unexpected websocket close")
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			logging.Debug().Err(err).Uint64("client_id", c.id).Msg("ignoring malformed client frame")
			continue
		}
		if msg.Type == MessageTypePing {
			c.Enqueue(Message{Type: MessageTypePong})
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logging.Error().Err(err).Msg("failed to set write deadline")
				return
			}
			if !ok {
				// Hub closed the channel.
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			payload, err := MarshalMessage(msg)
			if err != nil {
				logging.Error().Err(err).Str("message_type", msg.Type).Msg("failed to encode websocket message")
				continue
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				logging.Debug().Err(err).Uint64("client_id", c.id).Msg("websocket write failed")
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
