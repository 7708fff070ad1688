// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package store

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/recomendador/internal/metrics"
	"github.com/tomtom215/recomendador/internal/models"
)

// ErrUnsupportedVersion is returned for payloads no migration can read.
var ErrUnsupportedVersion = errors.New("store: unsupported snapshot version")

// migration rewrites a payload into the schema of version to.
type migration struct {
	to int
	fn func(payload []byte) ([]byte, error)
}

// migrations is keyed by source version. Version 0 is a v1 payload written
// before the version field existed.
var migrations = map[int]migration{
	0: {to: 2, fn: migrateV1ToV2},
	1: {to: 2, fn: migrateV1ToV2},
}

// Migrate decodes payload written at fromVersion into the current schema.
// At CurrentVersion it only decodes.
func Migrate(payload []byte, fromVersion int) (*Snapshot, error) {
	if fromVersion > CurrentVersion || fromVersion < 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, fromVersion)
	}

	version := fromVersion
	for version < CurrentVersion {
		step, ok := migrations[version]
		if !ok {
			return nil, fmt.Errorf("%w: no migration from %d", ErrUnsupportedVersion, version)
		}
		next, err := step.fn(payload)
		if err != nil {
			return nil, fmt.Errorf("migrate snapshot from v%d: %w", version, err)
		}
		metrics.RecordMigration(version)
		payload = next
		version = step.to
	}

	var snap Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot v%d: %w", CurrentVersion, err)
	}
	snap.Version = CurrentVersion
	return &snap, nil
}

func migrateV1ToV2(payload []byte) ([]byte, error) {
	var old snapshotV1
	if err := json.Unmarshal(payload, &old); err != nil {
		return nil, err
	}

	next := Snapshot{
		Version:  2,
		Language: models.NormalizeLang(old.Lang),
		Filters: Filters{
			Masterpiece:          old.IsMasterpieceActive,
			RegionalCinema:       old.IsRegionalCinemaActive,
			PodcastLanguages:     singleLanguage(old.PodcastLanguage),
			DocumentaryLanguages: singleLanguage(old.DocumentaryLanguage),
		},
		Catalog: old.Catalog,
	}
	if old.SelectedCategory != "" {
		if cat, err := models.ParseCategory(old.SelectedCategory); err == nil {
			next.Filters.Category = cat
		}
	}
	return json.Marshal(next)
}

func singleLanguage(s string) []models.Lang {
	if l := models.NormalizeLang(s); l != "" {
		return []models.Lang{l}
	}
	return []models.Lang{}
}
