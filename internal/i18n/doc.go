// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

// Package i18n resolves localized catalog fields to display strings and
// serves UI text from per-language YAML dictionaries.
//
// Resolve is a pure, total function: it never panics and always returns a
// string. Dictionary lookups fall back to the dictionary's default language
// and finally to the key itself.
package i18n
