// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

/*
Package session is the state container of one user session.

A Session owns the filter state, the navigation state, the UI language, the
active catalog and the home picks. It is constructed explicitly with New;
there is no package-level instance, so tests and servers can hold as many
isolated sessions as they need.

Transitions:

Every exported mutator is a named transition. It computes the next filter
and navigation states from the current ones under the session lock, swaps
them in as a whole, persists the allow-listed fields when they changed, and
then notifies observers with a read-only State. Observers never see a
partially applied transition.

Coordination rules between the two state machines:

  - SelectCategory sets the category filter and enters its listing.
  - Entering home (GoHome, or Back out of the category list) resets every
    filter and redraws the home picks.
  - Back from a detail view into a listing re-selects lastCategory when the
    filter points elsewhere.
  - OpenItem on an unknown item moves to notFound.

Persistence errors are logged and never surface to callers; the in-memory
state stays authoritative.
*/
package session
