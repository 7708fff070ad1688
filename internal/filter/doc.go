// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

// Package filter holds the catalog filter and toggle state as an immutable
// value. Every transition is a method returning the next State; fields can
// only be read through accessors, so no caller can leave the state in a
// combination the projection cannot interpret.
//
// Invariants kept by the transitions:
//   - SetCategory always clears the active subcategory and the masterpiece
//     and regional-cinema flags.
//   - Podcast and documentary language sets hold at most one language;
//     toggling the selected language clears the set, toggling another
//     replaces it.
package filter
