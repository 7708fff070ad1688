// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package services

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

var (
	_ suture.Service = (*HTTPServerService)(nil)
	_ suture.Service = (*WebSocketHubService)(nil)
	_ suture.Service = (*CatalogReloadService)(nil)
)

// mockHTTPServer is a test double for HTTPServer.
type mockHTTPServer struct {
	listenAndServeErr   error
	shutdownErr         error
	listenAndServeCount atomic.Int32
	shutdownCount       atomic.Int32
	started             chan struct{}
	stopCh              chan struct{}
}

func newMockHTTPServer() *mockHTTPServer {
	return &mockHTTPServer{
		started: make(chan struct{}, 1),
		stopCh:  make(chan struct{}),
	}
}

func (m *mockHTTPServer) ListenAndServe() error {
	m.listenAndServeCount.Add(1)
	select {
	case m.started <- struct{}{}:
	default:
	}
	if m.listenAndServeErr != nil {
		return m.listenAndServeErr
	}
	<-m.stopCh
	return http.ErrServerClosed
}

func (m *mockHTTPServer) Shutdown(context.Context) error {
	m.shutdownCount.Add(1)
	close(m.stopCh)
	return m.shutdownErr
}

func TestHTTPServerService(t *testing.T) {
	t.Run("graceful shutdown on cancel", func(t *testing.T) {
		server := newMockHTTPServer()
		svc := NewHTTPServerService(server, time.Second)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- svc.Serve(ctx) }()

		<-server.started
		cancel()

		select {
		case err := <-done:
			if !errors.Is(err, context.Canceled) {
				t.Errorf("Serve() = %v, want context.Canceled", err)
			}
		case <-time.After(time.Second):
			t.Fatal("Serve() did not return")
		}
		if server.shutdownCount.Load() != 1 {
			t.Errorf("Shutdown called %d times", server.shutdownCount.Load())
		}
	})

	t.Run("listen failure is returned", func(t *testing.T) {
		server := newMockHTTPServer()
		server.listenAndServeErr = errors.New("address in use")
		svc := NewHTTPServerService(server, time.Second)

		err := svc.Serve(context.Background())
		if err == nil || !errors.Is(err, server.listenAndServeErr) {
			t.Errorf("Serve() = %v, want wrapped listen error", err)
		}
	})

	t.Run("shutdown failure is returned", func(t *testing.T) {
		server := newMockHTTPServer()
		server.shutdownErr = errors.New("timeout")
		svc := NewHTTPServerService(server, time.Second)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- svc.Serve(ctx) }()
		<-server.started
		cancel()

		if err := <-done; err == nil || !errors.Is(err, server.shutdownErr) {
			t.Errorf("Serve() = %v, want wrapped shutdown error", err)
		}
	})

	t.Run("default timeout and name", func(t *testing.T) {
		svc := NewHTTPServerService(newMockHTTPServer(), 0)
		if svc.shutdownTimeout != 10*time.Second || svc.String() != "http-server" {
			t.Errorf("svc = %+v", svc)
		}
	})
}

type mockHub struct {
	runs atomic.Int32
}

func (m *mockHub) RunWithContext(ctx context.Context) error {
	m.runs.Add(1)
	<-ctx.Done()
	return ctx.Err()
}

func TestWebSocketHubService(t *testing.T) {
	hub := &mockHub{}
	svc := NewWebSocketHubService(hub)
	if svc.String() != "websocket-hub" {
		t.Errorf("String() = %q", svc.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v", err)
	}
	if hub.runs.Load() != 1 {
		t.Errorf("RunWithContext called %d times", hub.runs.Load())
	}
}

// scriptedReloader returns results from script in order, then repeats the
// last one.
type scriptedReloader struct {
	calls  atomic.Int32
	script []error
}

func (r *scriptedReloader) Reload(context.Context) (bool, error) {
	n := int(r.calls.Add(1)) - 1
	if n >= len(r.script) {
		n = len(r.script) - 1
	}
	return n == 0, r.script[n]
}

func TestCatalogReloadService(t *testing.T) {
	t.Run("reloads on every tick", func(t *testing.T) {
		r := &scriptedReloader{script: []error{nil}}
		svc := NewCatalogReloadService(r, 5*time.Millisecond)

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
		defer cancel()
		if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("Serve() = %v", err)
		}
		if r.calls.Load() < 2 {
			t.Errorf("Reload called %d times, want several", r.calls.Load())
		}
	})

	t.Run("isolated failures are tolerated", func(t *testing.T) {
		boom := errors.New("boom")
		r := &scriptedReloader{script: []error{boom, boom, nil}}
		svc := NewCatalogReloadService(r, 5*time.Millisecond)

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
		defer cancel()
		if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("Serve() = %v, want deadline after recovering", err)
		}
	})

	t.Run("repeated failures return", func(t *testing.T) {
		boom := errors.New("boom")
		r := &scriptedReloader{script: []error{boom}}
		svc := NewCatalogReloadService(r, time.Millisecond)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		err := svc.Serve(ctx)
		if !errors.Is(err, boom) {
			t.Errorf("Serve() = %v, want boom", err)
		}
		if r.calls.Load() != maxConsecutiveFailures {
			t.Errorf("Reload called %d times, want %d", r.calls.Load(), maxConsecutiveFailures)
		}
	})

	t.Run("non-positive interval", func(t *testing.T) {
		svc := NewCatalogReloadService(&scriptedReloader{script: []error{nil}}, 0)
		if err := svc.Serve(context.Background()); err == nil {
			t.Error("Serve() expected error for zero interval")
		}
	})
}
