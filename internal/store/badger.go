// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/recomendador/internal/logging"
)

// BadgerBackend stores values in a BadgerDB.
type BadgerBackend struct {
	db    *badger.DB
	owned bool
}

// OpenBadger opens a database at path, or a purely in-memory one.
func OpenBadger(path string, inMemory bool) (*BadgerBackend, error) {
	opts := badger.DefaultOptions(path)
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger store: %w", err)
	}

	logging.Info().Str("path", path).Bool("in_memory", inMemory).Msg("Snapshot store opened")
	return &BadgerBackend{db: db, owned: true}, nil
}

// NewBadgerBackend wraps a database owned by the caller; Close leaves it open.
func NewBadgerBackend(db *badger.DB) *BadgerBackend {
	return &BadgerBackend{db: db}
}

// Get implements Backend.
func (b *BadgerBackend) Get(_ context.Context, key string) ([]byte, error) {
	var out []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("badger get %s: %w", key, err)
	}
	return out, nil
}

// Put implements Backend.
func (b *BadgerBackend) Put(_ context.Context, key string, value []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("badger put %s: %w", key, err)
	}
	return nil
}

// Delete implements Backend.
func (b *BadgerBackend) Delete(_ context.Context, key string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("badger delete %s: %w", key, err)
	}
	return nil
}

// Close closes the database if this backend opened it.
func (b *BadgerBackend) Close() error {
	if !b.owned {
		return nil
	}
	return b.db.Close()
}
