// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

/*
Package catalog holds loaded catalog data and derives the visible item list
from it.

Key Components:

  - Catalog: an immutable, indexed set of items with a process-unique
    revision number. Replacing the catalog means building a new one.
  - Project: the ordered filter pipeline (category, subcategory or sentinel,
    masterpiece flag, regional flag, content language). Empty language
    selections for podcasts and documentaries yield no items.
  - Projector: Project memoized on (revision, filter state, language).
  - Sample: home-page picks, a uniform random subset of the whole pool.
  - LoadDir / Decode: read "<category>.json" arrays, dropping records that
    fail validation.

Returned slices are shared snapshots. Callers must not modify them.
*/
package catalog
