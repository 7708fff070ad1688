// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

/*
Package store persists an allow-listed part of the session under one fixed
key of a key-value backend.

Schema:

The payload is a JSON Snapshot carrying an integer "version". Snapshot is
the typed allow-list: UI language, selected category, masterpiece and
regional toggles, podcast and documentary language selections, and the last
loaded catalog. View state, daily picks and the active subcategory are never
written.

Migration:

Migrate(payload, fromVersion) upgrades older payloads one version at a time
through typed intermediate structs. At CurrentVersion it is the identity.
Newer or unknown versions return ErrUnsupportedVersion.

Failure model:

Load never fails. An unavailable backend, a corrupt payload or a failed
migration are logged, counted and reported as "no snapshot"; a snapshot
that cannot be migrated is deleted so the next Save starts clean.

Backends:

  - BadgerBackend: github.com/dgraph-io/badger/v4, on disk or in memory
  - MemoryBackend: a mutex-guarded map for tests and ephemeral runs
*/
package store
