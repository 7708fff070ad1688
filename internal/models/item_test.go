// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package models

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
)

func TestCatalogItem_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	raw := `{
		"id": 42,
		"category": "podcast",
		"subcategoria": "Entrevistas",
		"title": {"es": "Charlas", "en": "Talks"},
		"description": "Conversaciones",
		"masterpiece": true,
		"tags": ["cine regional", {"es": "clásico"}],
		"idioma": "es-ES",
		"year": 2021
	}`

	var it CatalogItem
	if err := json.Unmarshal([]byte(raw), &it); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if it.ID != "42" {
		t.Errorf("ID = %q, want 42", it.ID)
	}
	if it.Category != CategoryPodcast {
		t.Errorf("Category = %q", it.Category)
	}
	if it.Subcategory != "Entrevistas" {
		t.Errorf("Subcategory = %q", it.Subcategory)
	}
	if v, _ := it.Title.Lookup(LangEnglish); v != "Talks" {
		t.Errorf("Title[en] = %q", v)
	}
	if !it.Masterpiece {
		t.Error("Masterpiece = false, want true")
	}
	if len(it.Tags) != 2 {
		t.Fatalf("Tags len = %d, want 2", len(it.Tags))
	}
	if it.Language() != LangSpanish {
		t.Errorf("Language() = %q, want es", it.Language())
	}
	if year, ok := it.Attribute("year"); !ok || year.(float64) != 2021 {
		t.Errorf("Attribute(year) = %v, %v", year, ok)
	}
	if _, ok := it.Attribute("idioma"); !ok {
		t.Error("idioma should be kept as an attribute")
	}
}

func TestCatalogItem_UnmarshalJSONDegradesGracefully(t *testing.T) {
	t.Parallel()

	var it CatalogItem
	if err := json.Unmarshal([]byte(`{"id":"x","masterpiece":"yes","tags":{"oops":1}}`), &it); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if it.Masterpiece {
		t.Error("non-bool masterpiece should decode as false")
	}
	if !it.Title.IsZero() {
		t.Error("missing title should be the absent field")
	}
	if it.Category != "" {
		t.Errorf("Category = %q, want empty", it.Category)
	}

	if err := json.Unmarshal([]byte(`[1,2]`), &it); err == nil {
		t.Error("non-object input should fail")
	}
}

func TestCatalogItem_MarshalJSONFlattensAttributes(t *testing.T) {
	t.Parallel()

	in := CatalogItem{
		ID:         "7",
		Category:   CategoryBooks,
		Title:      Plain("Rayuela"),
		Attributes: map[string]any{"author": "Cortázar"},
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var out CatalogItem
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if out.Attributes["author"] != "Cortázar" {
		t.Errorf("author = %v", out.Attributes["author"])
	}
	if out.Ref() != in.Ref() {
		t.Errorf("Ref() = %v, want %v", out.Ref(), in.Ref())
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"movies", CategoryMovies, false},
		{"Películas", CategoryMovies, false},
		{" juegos de mesa ", CategoryBoardgames, false},
		{"Documentaries", CategoryDocumentaries, false},
		{"videojuegos", CategoryVideogames, false},
		{"recipes", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownCategory) {
				t.Errorf("ParseCategory(%q) error = %v, want ErrUnknownCategory", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestCategory_LanguageFiltered(t *testing.T) {
	t.Parallel()

	for _, c := range Categories {
		want := c == CategoryPodcast || c == CategoryDocumentaries
		if c.LanguageFiltered() != want {
			t.Errorf("%s.LanguageFiltered() = %v", c, !want)
		}
		if !c.Valid() {
			t.Errorf("%s.Valid() = false", c)
		}
	}
	if Category("recipes").Valid() {
		t.Error("unknown category reported valid")
	}
}
