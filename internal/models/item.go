// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package models

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"
)

// Attribute names that carry the content language of podcasts and documentaries.
const (
	AttrLanguage = "language"
	AttrIdioma   = "idioma"
)

// CatalogItem is one recommendable work. Known keys are decoded into fields;
// every other key of the source record lands in Attributes.
type CatalogItem struct {
	ID          string           `json:"id" validate:"required"`
	Category    Category         `json:"category" validate:"required,catalog_category"`
	Subcategory string           `json:"subcategory,omitempty"`
	Title       LocalizedField   `json:"title"`
	Description LocalizedField   `json:"description"`
	Masterpiece bool             `json:"masterpiece,omitempty"`
	Tags        []LocalizedField `json:"tags,omitempty"`
	Attributes  map[string]any   `json:"-"`
}

// ItemRef addresses an item; ids are unique only within their category.
type ItemRef struct {
	Category Category `json:"category"`
	ID       string   `json:"id"`
}

// IsZero reports whether no item is referenced.
func (r ItemRef) IsZero() bool {
	return r.ID == "" && r.Category == ""
}

func (r ItemRef) String() string {
	return string(r.Category) + "/" + r.ID
}

// Ref returns the address of the item.
func (it CatalogItem) Ref() ItemRef {
	return ItemRef{Category: it.Category, ID: it.ID}
}

// Language returns the normalized content language from the "language" or
// "idioma" attribute, or "" when neither is a string.
func (it CatalogItem) Language() Lang {
	for _, key := range []string{AttrLanguage, AttrIdioma} {
		if s, ok := it.Attributes[key].(string); ok && strings.TrimSpace(s) != "" {
			return NormalizeLang(s)
		}
	}
	return ""
}

// Attribute returns the raw attribute value stored under key.
func (it CatalogItem) Attribute(key string) (any, bool) {
	v, ok := it.Attributes[key]
	return v, ok
}

var knownItemKeys = map[string]struct{}{
	"id": {}, "category": {}, "subcategory": {}, "subcategoria": {},
	"title": {}, "titulo": {}, "description": {}, "descripcion": {},
	"masterpiece": {}, "tags": {},
}

// UnmarshalJSON is lenient: missing or oddly typed fields decode to their
// zero value instead of failing the whole record. Only input that is not a
// JSON object is an error.
func (it *CatalogItem) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*it = CatalogItem{}
	it.ID = scalarString(raw["id"])
	it.Category = Category(strings.TrimSpace(scalarString(raw["category"])))
	it.Subcategory = scalarString(firstPresent(raw, "subcategory", "subcategoria"))

	// Errors are impossible here: LocalizedField accepts any valid JSON value.
	_ = decodeLocalized(firstPresent(raw, "title", "titulo"), &it.Title)
	_ = decodeLocalized(firstPresent(raw, "description", "descripcion"), &it.Description)

	if m, ok := raw["masterpiece"]; ok {
		var b bool
		if json.Unmarshal(m, &b) == nil {
			it.Masterpiece = b
		}
	}

	if t, ok := raw["tags"]; ok {
		var tags []LocalizedField
		if json.Unmarshal(t, &tags) == nil {
			it.Tags = tags
		} else {
			var single LocalizedField
			if decodeLocalized(t, &single) == nil && !single.IsZero() {
				it.Tags = []LocalizedField{single}
			}
		}
	}

	for key, value := range raw {
		if _, known := knownItemKeys[key]; known {
			continue
		}
		var v any
		if json.Unmarshal(value, &v) != nil {
			continue
		}
		if it.Attributes == nil {
			it.Attributes = make(map[string]any)
		}
		it.Attributes[key] = v
	}
	return nil
}

// MarshalJSON flattens Attributes back next to the known keys.
func (it CatalogItem) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(it.Attributes)+8)
	for k, v := range it.Attributes {
		out[k] = v
	}
	out["id"] = it.ID
	out["category"] = it.Category
	if it.Subcategory != "" {
		out["subcategory"] = it.Subcategory
	}
	out["title"] = it.Title
	out["description"] = it.Description
	if it.Masterpiece {
		out["masterpiece"] = true
	}
	if len(it.Tags) > 0 {
		out["tags"] = it.Tags
	}
	return json.Marshal(out)
}

func firstPresent(raw map[string]json.RawMessage, keys ...string) json.RawMessage {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			return v
		}
	}
	return nil
}

func decodeLocalized(raw json.RawMessage, dst *LocalizedField) error {
	if raw == nil {
		return nil
	}
	return dst.UnmarshalJSON(raw)
}

// scalarString renders strings verbatim and numbers/bools as their JSON
// text, so numeric ids survive.
func scalarString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if json.Unmarshal(raw, &s) == nil {
			return s
		}
		return ""
	}
	if raw[0] == '{' || raw[0] == '[' {
		return ""
	}
	return string(raw)
}
