// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package taxonomy

import (
	"testing"

	"github.com/tomtom215/recomendador/internal/models"
)

func TestTableHasNoClashes(t *testing.T) {
	t.Parallel()

	if _, _, clashes := buildIndex(entries); len(clashes) > 0 {
		t.Fatalf("bilingual table has clashing labels: %v", clashes)
	}
}

func TestToCanonical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Key
	}{
		{"acción", "action"},
		{"  ACCIÓN ", "action"},
		{"Accio\u0301n", "action"}, // decomposed acute accent
		{"terror", "horror"},
		{"Horror", "horror"},
		{"familiar", "family"},
		{"cartas", "cards"},
		{"económico", "economic"},
		{"mundo abierto", "sandbox"},
		{"independiente", "indie"},
		{"Science Fiction", "science-fiction"},
		{"science-fiction", "science-fiction"},
		{"Cyberpunk Noir", "cyberpunk noir"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ToCanonical(tt.in); got != tt.want {
			t.Errorf("ToCanonical(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToCanonical_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Acción", "TERROR", " mundo abierto ", "unknown label", "Ünïcödé", "İstanbul",
		"hip hop", "Hip-Hop", "\tNovela Gráfica\n", "123", "",
	}
	for _, k := range Keys() {
		inputs = append(inputs, string(k))
	}

	for _, in := range inputs {
		once := ToCanonical(in)
		if twice := ToCanonical(string(once)); twice != once {
			t.Errorf("ToCanonical not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestFromCanonical_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, k := range Keys() {
		for _, lang := range []models.Lang{models.LangSpanish, models.LangEnglish, "fr"} {
			label := FromCanonical(k, lang)
			if label == "" {
				t.Errorf("FromCanonical(%q, %q) is empty", k, lang)
			}
			if got := ToCanonical(label); got != k {
				t.Errorf("ToCanonical(FromCanonical(%q, %q) = %q) = %q", k, lang, label, got)
			}
		}
	}
}

func TestFromCanonical_Fallbacks(t *testing.T) {
	t.Parallel()

	if got := FromCanonical("action", "es"); got != "Acción" {
		t.Errorf("FromCanonical(action, es) = %q", got)
	}
	if got := FromCanonical("action", "de"); got != "action" {
		t.Errorf("FromCanonical(action, de) = %q, want key", got)
	}
	if got := FromCanonical("cyberpunk", "es"); got != "cyberpunk" {
		t.Errorf("FromCanonical(unknown) = %q, want key", got)
	}
}

func TestSubcategories_Static(t *testing.T) {
	t.Parallel()

	for cat, keys := range staticSubcategories {
		for _, k := range keys {
			if !IsKnown(k) {
				t.Errorf("%s lists %q which is not in the table", cat, k)
			}
		}
	}

	subs := Subcategories(models.CategoryBoardgames, models.LangSpanish, nil)
	if len(subs) == 0 || subs[0].Key != "cards" || subs[0].Label != "Cartas" {
		t.Errorf("Subcategories(boardgames, es) = %v", subs)
	}
}

func TestSubcategories_DocumentariesDiscovered(t *testing.T) {
	t.Parallel()

	items := []models.CatalogItem{
		{ID: "1", Category: models.CategoryDocumentaries, Subcategory: "Naturaleza"},
		{ID: "2", Category: models.CategoryDocumentaries, Subcategory: "nature"},
		{ID: "3", Category: models.CategoryDocumentaries, Subcategory: "Arte"},
		{ID: "4", Category: models.CategoryDocumentaries, Subcategory: "Ciencia"},
		{ID: "5", Category: models.CategoryDocumentaries, Subcategory: "Ópera"},
		{ID: "6", Category: models.CategoryDocumentaries},
		{ID: "7", Category: models.CategoryMovies, Subcategory: "Acción"},
	}

	got := Subcategories(models.CategoryDocumentaries, models.LangSpanish, items)
	want := []Subcategory{
		{Key: "art", Label: "Arte"},
		{Key: "science", Label: "Ciencia"},
		{Key: "nature", Label: "Naturaleza"},
		{Key: "ópera", Label: "ópera"},
	}
	if len(got) != len(want) {
		t.Fatalf("Subcategories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Subcategories()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	en := Subcategories(models.CategoryDocumentaries, models.LangEnglish, items)
	if en[0].Label != "Art" || en[1].Label != "Nature" || en[2].Label != "Science" {
		t.Errorf("Subcategories(en) = %v", en)
	}
}

func TestAudit(t *testing.T) {
	t.Parallel()

	items := []models.CatalogItem{
		{ID: "1", Category: models.CategoryMovies, Subcategory: "Acción"},
		{ID: "2", Category: models.CategoryMovies, Subcategory: "Cyberpunk"},
		{ID: "3", Category: models.CategoryMovies, Subcategory: "cyberpunk "},
		{ID: "4", Category: models.CategoryBooks, Subcategory: "Cyberpunk"},
		{ID: "5", Category: models.CategoryMovies},
	}

	report := Audit(items)
	if report.Items != 5 || report.Mapped != 1 {
		t.Errorf("Audit() items=%d mapped=%d", report.Items, report.Mapped)
	}
	if len(report.Unmapped) != 2 {
		t.Fatalf("Audit() unmapped = %v", report.Unmapped)
	}
	first := report.Unmapped[0]
	if first.Category != models.CategoryMovies || first.Count != 2 || len(first.Raw) != 2 {
		t.Errorf("Audit() first = %+v", first)
	}

	report.Log()
}
