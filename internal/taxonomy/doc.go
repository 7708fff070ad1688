// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

/*
Package taxonomy maps Spanish and English subcategory labels onto one
language-neutral canonical key and back.

Normalization:

ToCanonical trims, lower-cases and NFC-normalizes a label, then looks it up
in a fixed bilingual table. It is total and idempotent: unknown labels pass
through as their own key, and canonical keys map to themselves. Labels that
fall through are not rewritten; Audit reports them so fragmented source data
can be fixed at the source.

Display:

FromCanonical returns the label for a language, or the key itself when the
table has no translation. For every known key k and language l in {es, en},
ToCanonical(FromCanonical(k, l)) == k.

Subcategory lists are static per category, except for documentaries, whose
subcategories are discovered from the catalog and sorted with the active
language's collation.
*/
package taxonomy
