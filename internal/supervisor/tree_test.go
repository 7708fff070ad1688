// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"
)

// mockService runs until canceled, optionally failing its first failFirst
// starts.
type mockService struct {
	name      string
	failFirst int32
	starts    atomic.Int32
}

func (m *mockService) Serve(ctx context.Context) error {
	if n := m.starts.Add(1); n <= m.failFirst {
		return errors.New("simulated failure")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (m *mockService) String() string { return m.name }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestNewSupervisorTree_Defaults(t *testing.T) {
	tree, err := NewSupervisorTree(quietLogger(), TreeConfig{})
	if err != nil {
		t.Fatalf("NewSupervisorTree() error = %v", err)
	}
	if tree.Root() == nil {
		t.Fatal("root supervisor should not be nil")
	}
	if tree.config != DefaultTreeConfig() {
		t.Errorf("config = %+v, want defaults", tree.config)
	}
}

func TestNewSupervisorTree_RequiresLogger(t *testing.T) {
	if _, err := NewSupervisorTree(nil, TreeConfig{}); err == nil {
		t.Error("expected error for nil logger")
	}
}

func TestTreeConfig_WithDefaults(t *testing.T) {
	got := TreeConfig{FailureBackoff: time.Second}.withDefaults()
	want := DefaultTreeConfig()
	want.FailureBackoff = time.Second
	if got != want {
		t.Errorf("withDefaults() = %+v, want %+v", got, want)
	}
}

func TestSupervisorTree_AddByLayer(t *testing.T) {
	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{})
	for _, layer := range Layers {
		if _, err := tree.Add(layer, &mockService{name: string(layer)}); err != nil {
			t.Errorf("Add(%s) error = %v", layer, err)
		}
	}
	if _, err := tree.Add("storage-layer", &mockService{name: "x"}); err == nil {
		t.Error("expected error for unknown layer")
	}
}

func TestSupervisorTree_StartsEveryLayer(t *testing.T) {
	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{ShutdownTimeout: time.Second})

	cat := &mockService{name: "catalog"}
	msg := &mockService{name: "messaging"}
	api := &mockService{name: "api"}
	tree.AddCatalogService(cat)
	tree.AddMessagingService(msg)
	tree.AddAPIService(api)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	deadline := time.Now().Add(time.Second)
	for cat.starts.Load() == 0 || msg.starts.Load() == 0 || api.starts.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("not every layer started")
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("tree did not shut down in time")
	}

	if report, err := tree.UnstoppedServiceReport(); err == nil && len(report) != 0 {
		t.Errorf("unstopped services = %v", report)
	}
}

func TestSupervisorTree_RestartsFailingService(t *testing.T) {
	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})

	failing := &mockService{name: "failing", failFirst: 2}
	stable := &mockService{name: "stable"}
	tree.AddMessagingService(failing)
	tree.AddAPIService(stable)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	go func() { _ = tree.Serve(ctx) }()

	deadline := time.Now().Add(250 * time.Millisecond)
	for failing.starts.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if failing.starts.Load() < 3 {
		t.Errorf("failing service started %d times, want at least 3", failing.starts.Load())
	}
	if stable.starts.Load() != 1 {
		t.Errorf("stable service started %d times, want 1", stable.starts.Load())
	}
}
