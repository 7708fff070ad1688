// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package models

import (
	"strings"

	"golang.org/x/text/language"
)

// Lang is a base language code such as "es" or "en".
type Lang string

const (
	LangSpanish Lang = "es"
	LangEnglish Lang = "en"
)

// DefaultLang is used whenever no language has been chosen.
const DefaultLang = LangSpanish

// NormalizeLang reduces a BCP 47 tag ("es-ES", "EN_us") to its base language.
// Input that does not parse is returned trimmed and lower-cased so it can
// still be compared against catalog attributes.
func NormalizeLang(s string) Lang {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return Lang(strings.ToLower(s))
	}
	base, _ := tag.Base()
	return Lang(base.String())
}

// Tag returns the x/text tag for l, or language.Und when l is not a valid code.
func (l Lang) Tag() language.Tag {
	tag, err := language.Parse(string(l))
	if err != nil {
		return language.Und
	}
	return tag
}

func (l Lang) String() string {
	return string(l)
}
