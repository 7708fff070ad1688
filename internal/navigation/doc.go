// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

/*
Package navigation implements the view state machine.

States:

	home -> categories -> subcategories -> detail
	coffee, howToDownload      overlays reachable from anywhere
	notFound                   unknown item or route

History is single-level by contract: lastCategory remembers the category
listing a detail view was opened from, and previousView remembers the view
an overlay covers. Neither is a stack. lastCategory is written only when a
category listing is entered; GoHome clears it together with the selected
item.

Every transition is total and returns a new State.
*/
package navigation
