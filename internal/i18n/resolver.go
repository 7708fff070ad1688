// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package i18n

import "github.com/tomtom215/recomendador/internal/models"

// fallbackOrder is tried after the requested language.
var fallbackOrder = []models.Lang{models.LangSpanish, models.LangEnglish}

// Resolve returns the display string of field for lang.
//
// A plain field is returned verbatim, even when empty. A localized field
// yields the first non-empty value among lang, es, en and then the entries
// in source order; fallback is returned when none qualifies or the field is
// absent.
func Resolve(field models.LocalizedField, lang models.Lang, fallback string) string {
	switch field.Kind() {
	case models.FieldPlain:
		s, _ := field.PlainValue()
		return s
	case models.FieldLocalized:
		if v, ok := field.Lookup(lang); ok && v != "" {
			return v
		}
		for _, l := range fallbackOrder {
			if v, ok := field.Lookup(l); ok && v != "" {
				return v
			}
		}
		for _, v := range field.Values() {
			if v.Value != "" {
				return v.Value
			}
		}
		return fallback
	default:
		return fallback
	}
}

// ResolveAll resolves every field, dropping those that resolve to "".
func ResolveAll(fields []models.LocalizedField, lang models.Lang) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if s := Resolve(f, lang, ""); s != "" {
			out = append(out, s)
		}
	}
	return out
}
