// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

/*
Package models defines the catalog data structures shared by every other
Recomendador package.

Key Components:

  - CatalogItem: one recommendable work (film, book, record, game...) with
    localized title/description, canonical subcategory, masterpiece flag,
    free-form attributes and tags.
  - LocalizedField: tagged union holding either a plain string or an ordered
    per-language map. Decoding never fails on unexpected shapes; nested values
    are kept as compact JSON text so they can never leak as objects.
  - Category: the closed set of catalog categories, with Spanish and English
    aliases accepted by ParseCategory.
  - Lang: a normalized base language code ("es", "en").
  - ItemRef: (category, id) pair; ids are only unique within a category.

Usage Example:

	var item models.CatalogItem
	if err := json.Unmarshal(raw, &item); err != nil {
	    return err
	}
	title := i18n.Resolve(item.Title, models.LangEnglish, item.ID)

Thread Safety:

All types are plain values. Items handed out by the catalog are shared
read-only snapshots; callers must not mutate Attributes or Tags in place.
*/
package models
