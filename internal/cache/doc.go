// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

// Package cache provides a generic, thread-safe LRU with lazy TTL expiry.
// The catalog projector uses it to memoize projections keyed by catalog
// revision, filter state and language.
package cache
