// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/recomendador/internal/logging"
	"github.com/tomtom215/recomendador/internal/metrics"
)

// DefaultKey is the backend key holding the snapshot.
const DefaultKey = "recomendador:state"

// Load outcomes, used as metric labels.
const (
	outcomeHit         = "hit"
	outcomeMiss        = "miss"
	outcomeUnavailable = "unavailable"
	outcomeCorrupt     = "corrupt"
	outcomeUnsupported = "unsupported"
)

// Store reads and writes the snapshot under one key.
type Store struct {
	backend Backend
	key     string
	now     func() time.Time
}

// New returns a Store over backend. An empty key selects DefaultKey.
func New(backend Backend, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{backend: backend, key: key, now: time.Now}
}

// Load returns the stored snapshot migrated to CurrentVersion, or nil when
// there is none or it cannot be used. It never returns an error; failures
// are logged.
func (s *Store) Load(ctx context.Context) *Snapshot {
	payload, err := s.backend.Get(ctx, s.key)
	if errors.Is(err, ErrNotFound) {
		metrics.RecordStoreLoad(outcomeMiss)
		logging.CtxDebug(ctx).Str("key", s.key).Msg("No persisted snapshot")
		return nil
	}
	if err != nil {
		metrics.RecordStoreLoad(outcomeUnavailable)
		logging.CtxWarn(ctx).Err(err).Str("key", s.key).Msg("Snapshot storage unavailable, using defaults")
		return nil
	}

	var header struct {
		Version *int `json:"version"`
	}
	if err := json.Unmarshal(payload, &header); err != nil {
		metrics.RecordStoreLoad(outcomeCorrupt)
		logging.CtxWarn(ctx).Err(err).Str("key", s.key).Msg("Corrupt snapshot ignored, using defaults")
		return nil
	}
	version := 0
	if header.Version != nil {
		version = *header.Version
	}

	snap, err := Migrate(payload, version)
	if err != nil {
		outcome := outcomeCorrupt
		if errors.Is(err, ErrUnsupportedVersion) {
			outcome = outcomeUnsupported
		}
		metrics.RecordStoreLoad(outcome)
		logging.CtxWarn(ctx).Err(err).Int("version", version).Msg("Snapshot discarded, using defaults")
		s.discard(ctx)
		return nil
	}

	metrics.RecordStoreLoad(outcomeHit)
	logging.CtxDebug(ctx).Int("from_version", version).Int("catalog_items", len(snap.Catalog)).Msg("Snapshot loaded")
	return snap
}

// Save writes snap at CurrentVersion, stamping SavedAt.
func (s *Store) Save(ctx context.Context, snap Snapshot) error {
	snap.Version = CurrentVersion
	snap.SavedAt = s.now().UTC()

	payload, err := json.Marshal(snap)
	if err != nil {
		metrics.RecordStoreSave(0, err)
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.backend.Put(ctx, s.key, payload); err != nil {
		metrics.RecordStoreSave(0, err)
		return fmt.Errorf("write snapshot: %w", err)
	}
	metrics.RecordStoreSave(len(payload), nil)
	return nil
}

// Clear deletes the snapshot.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.backend.Delete(ctx, s.key); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	return nil
}

// Close closes the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) discard(ctx context.Context) {
	if err := s.Clear(ctx); err != nil {
		logging.CtxWarn(ctx).Err(err).Msg("Could not delete unusable snapshot")
	}
}
