// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

// Package validation wraps go-playground/validator v10 with a shared
// instance, catalog-specific rules and readable error messages.
//
// Custom tags:
//   - catalog_category: value is one of models.Categories
//   - catalog_lang: value normalizes to a non-empty base language
//
// Field names in errors use the json tag, so messages match the payload
// the caller sent:
//
//	if verr := validation.ValidateStruct(&item); verr != nil {
//	    logging.Warn().Str("reason", verr.Error()).Msg("Dropping catalog item")
//	}
package validation
