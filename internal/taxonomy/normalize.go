// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package taxonomy

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tomtom215/recomendador/internal/models"
)

// normalizeLabel folds case and composes accents so "Acción" typed with a
// combining acute matches the table.
func normalizeLabel(s string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(s)))
}

// ToCanonical maps a label in any supported language to its canonical key.
// Unknown labels pass through normalized.
func ToCanonical(label string) Key {
	n := normalizeLabel(label)
	if k, ok := byLabel[n]; ok {
		return k
	}
	return Key(n)
}

// FromCanonical returns the display label of key in lang. Languages without
// a column and keys outside the table yield the key itself.
func FromCanonical(key Key, lang models.Lang) string {
	e, ok := byKey[key]
	if !ok {
		return string(key)
	}
	switch lang {
	case models.LangSpanish:
		return e.ES
	case models.LangEnglish:
		return e.EN
	default:
		return string(key)
	}
}

// IsKnown reports whether key is in the bilingual table.
func IsKnown(key Key) bool {
	_, ok := byKey[key]
	return ok
}

// Keys returns every canonical key in table order.
func Keys() []Key {
	out := make([]Key, len(entries))
	for i, e := range entries {
		out[i] = e.Key
	}
	return out
}
