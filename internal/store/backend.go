// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrNotFound is returned by backends when the key holds no value.
var ErrNotFound = errors.New("store: key not found")

// Backend is a byte-oriented key-value store.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// BackendType selects a Backend implementation.
type BackendType string

const (
	BackendBadger BackendType = "badger"
	BackendMemory BackendType = "memory"
)

// BackendConfig describes how to open a backend.
type BackendConfig struct {
	Type     BackendType
	Path     string
	InMemory bool
}

// OpenBackend opens the configured backend. An empty type selects memory.
func OpenBackend(cfg BackendConfig) (Backend, error) {
	switch cfg.Type {
	case BackendBadger:
		return OpenBadger(cfg.Path, cfg.InMemory)
	case BackendMemory, "":
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Type)
	}
}

// MemoryBackend keeps values in a map. Values are copied in and out.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryBackend returns an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string][]byte)}
}

// Get implements Backend.
func (m *MemoryBackend) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Put implements Backend.
func (m *MemoryBackend) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = append([]byte(nil), value...)
	return nil
}

// Delete implements Backend. Deleting a missing key is not an error.
func (m *MemoryBackend) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

// Close implements Backend.
func (m *MemoryBackend) Close() error {
	return nil
}
