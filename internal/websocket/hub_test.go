// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package websocket

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/recomendador/internal/models"
	"github.com/tomtom215/recomendador/internal/session"
)

// startHub runs a hub until the test ends.
func startHub(t *testing.T) (*Hub, context.CancelFunc, <-chan error) {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- hub.RunWithContext(ctx) }()
	t.Cleanup(cancel)
	return hub, cancel, done
}

// connlessClient is a client without a connection; tests read its send
// channel directly.
func connlessClient(hub *Hub, buffer int) *Client {
	return &Client{id: clientIDCounter.Add(1), hub: hub, send: make(chan Message, buffer)}
}

func receive(t *testing.T, c *Client) (Message, bool) {
	t.Helper()
	select {
	case msg, ok := <-c.send:
		return msg, ok
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return Message{}, false
	}
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for hub.GetClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("client count = %d, want %d", hub.GetClientCount(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHub_BroadcastReachesEveryClient(t *testing.T) {
	t.Parallel()

	hub, _, _ := startHub(t)
	a, b := connlessClient(hub, 4), connlessClient(hub, 4)
	hub.Register <- a
	hub.Register <- b
	waitForClients(t, hub, 2)

	hub.BroadcastJSON("custom", map[string]int{"n": 1})

	for _, c := range []*Client{a, b} {
		msg, ok := receive(t, c)
		if !ok || msg.Type != "custom" {
			t.Errorf("client %d got %+v, %v", c.id, msg, ok)
		}
	}
}

func TestHub_ObserveSendsState(t *testing.T) {
	t.Parallel()

	hub, _, _ := startHub(t)
	c := connlessClient(hub, 4)
	hub.Register <- c
	waitForClients(t, hub, 1)

	sess := session.New(session.Options{})
	unsubscribe := sess.Subscribe(hub.Observe)
	defer unsubscribe()
	sess.SelectCategory(context.Background(), models.CategoryBooks)

	msg, _ := receive(t, c)
	if msg.Type != MessageTypeState {
		t.Fatalf("Type = %q, want state", msg.Type)
	}
	st, ok := msg.Data.(session.State)
	if !ok || st.Filters.Category() != models.CategoryBooks {
		t.Errorf("Data = %#v", msg.Data)
	}

	payload, err := MarshalMessage(msg)
	if err != nil {
		t.Fatalf("MarshalMessage() error = %v", err)
	}
	for _, want := range []string{`"type":"state"`, `"selectedCategory":"books"`, `"currentView":"subcategories"`} {
		if !strings.Contains(string(payload), want) {
			t.Errorf("payload %s missing %s", payload, want)
		}
	}
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	t.Parallel()

	hub, _, _ := startHub(t)
	c := connlessClient(hub, 1)
	hub.Register <- c
	waitForClients(t, hub, 1)

	hub.Unregister <- c
	if _, ok := receive(t, c); ok {
		t.Error("send channel should be closed after unregister")
	}
	waitForClients(t, hub, 0)

	// Unregistering twice must not panic on a closed channel.
	hub.Unregister <- c
}

func TestHub_DropsSlowClient(t *testing.T) {
	t.Parallel()

	hub, _, _ := startHub(t)
	slow := connlessClient(hub, 1)
	hub.Register <- slow
	waitForClients(t, hub, 1)

	hub.BroadcastJSON("one", nil)
	hub.BroadcastJSON("two", nil)
	waitForClients(t, hub, 0)

	msg, ok := receive(t, slow)
	if !ok || msg.Type != "one" {
		t.Errorf("first message = %+v, %v", msg, ok)
	}
	if _, ok := receive(t, slow); ok {
		t.Error("dropped client's channel should be closed")
	}
}

func TestHub_ShutdownClosesClients(t *testing.T) {
	t.Parallel()

	hub, cancel, done := startHub(t)
	c := connlessClient(hub, 1)
	hub.Register <- c
	waitForClients(t, hub, 1)

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("RunWithContext() = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}
	if _, ok := receive(t, c); ok {
		t.Error("client channel should be closed on shutdown")
	}
	if hub.GetClientCount() != 0 {
		t.Errorf("GetClientCount() = %d after shutdown", hub.GetClientCount())
	}
}

func TestGetShutdownReason(t *testing.T) {
	t.Parallel()

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	if got := getShutdownReason(canceled); got != ShutdownReasonContextCanceled {
		t.Errorf("canceled = %q", got)
	}

	expired, cancel2 := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel2()
	if got := getShutdownReason(expired); got != ShutdownReasonContextDeadline {
		t.Errorf("deadline = %q", got)
	}
}

func TestHub_BroadcastNeverBlocks(t *testing.T) {
	t.Parallel()

	hub := NewHub() // not running
	for i := 0; i < cap(hub.broadcast)+10; i++ {
		hub.BroadcastJSON("flood", i)
	}
	if len(hub.broadcast) != cap(hub.broadcast) {
		t.Errorf("queued %d, want %d", len(hub.broadcast), cap(hub.broadcast))
	}
}

func TestHub_DropsStaleState(t *testing.T) {
	t.Parallel()

	hub, _, _ := startHub(t)
	c := connlessClient(hub, 4)
	hub.Register <- c
	waitForClients(t, hub, 1)

	hub.Observe(session.State{Sequence: 3})
	hub.Observe(session.State{Sequence: 2})
	hub.Observe(session.State{Sequence: 3})
	hub.BroadcastJSON("marker", nil)

	msg, _ := receive(t, c)
	if msg.Type != MessageTypeState || msg.Sequence != 3 {
		t.Fatalf("first message = %+v, want state 3", msg)
	}
	if msg, _ = receive(t, c); msg.Type != "marker" {
		t.Errorf("second message = %+v, want marker; stale states must be dropped", msg)
	}
}

func TestHub_RegisterReplaysNewerState(t *testing.T) {
	t.Parallel()

	hub, _, _ := startHub(t)
	watcher := connlessClient(hub, 4)
	hub.Register <- watcher
	waitForClients(t, hub, 1)

	// The new client read state 1, then state 2 was broadcast before it
	// registered.
	late := connlessClient(hub, 4)
	late.EnqueueState(session.State{Sequence: 1})
	hub.Observe(session.State{Sequence: 2})
	if msg, _ := receive(t, watcher); msg.Sequence != 2 {
		t.Fatalf("watcher got %+v", msg)
	}
	hub.Register <- late
	waitForClients(t, hub, 2)

	var seqs []uint64
	for len(late.send) > 0 {
		msg, _ := receive(t, late)
		seqs = append(seqs, msg.Sequence)
	}
	if len(seqs) != 2 || seqs[0] != 1 || seqs[1] != 2 {
		t.Errorf("late client sequences = %v, want [1 2]", seqs)
	}

	// A greeting newer than the hub's last broadcast is not followed by
	// the older one.
	fresh := connlessClient(hub, 4)
	fresh.EnqueueState(session.State{Sequence: 5})
	hub.Register <- fresh
	waitForClients(t, hub, 3)
	if n := len(fresh.send); n != 1 {
		t.Errorf("fresh client queued %d messages, want 1", n)
	}
}
