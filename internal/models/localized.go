// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package models

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// FieldKind identifies which variant a LocalizedField holds.
type FieldKind uint8

const (
	// FieldNone is the zero value: the field was absent or null.
	FieldNone FieldKind = iota
	// FieldPlain holds a single string used for every language.
	FieldPlain
	// FieldLocalized holds per-language values in source order.
	FieldLocalized
)

// LocalizedValue is one entry of a localized map.
type LocalizedValue struct {
	Lang  Lang
	Value string
}

// LocalizedField is either a plain string or a per-language map. The zero
// value is the absent field.
type LocalizedField struct {
	kind   FieldKind
	plain  string
	values []LocalizedValue
}

// Plain builds a plain-string field.
func Plain(s string) LocalizedField {
	return LocalizedField{kind: FieldPlain, plain: s}
}

// Localized builds a per-language field. Entry order is preserved and later
// duplicates of a language are ignored.
func Localized(values ...LocalizedValue) LocalizedField {
	f := LocalizedField{kind: FieldLocalized, values: make([]LocalizedValue, 0, len(values))}
	for _, v := range values {
		f.add(v.Lang, v.Value)
	}
	return f
}

// LocalizedMap is a convenience for building a field from es/en pairs in a
// fixed order: the arguments alternate language and value.
func LocalizedMap(pairs ...string) LocalizedField {
	f := LocalizedField{kind: FieldLocalized}
	for i := 0; i+1 < len(pairs); i += 2 {
		f.add(Lang(pairs[i]), pairs[i+1])
	}
	return f
}

func (f *LocalizedField) add(lang Lang, value string) {
	for _, v := range f.values {
		if v.Lang == lang {
			return
		}
	}
	f.values = append(f.values, LocalizedValue{Lang: lang, Value: value})
}

// Kind reports the variant held by f.
func (f LocalizedField) Kind() FieldKind { return f.kind }

// IsZero reports whether the field is absent.
func (f LocalizedField) IsZero() bool { return f.kind == FieldNone }

// PlainValue returns the string of a plain field.
func (f LocalizedField) PlainValue() (string, bool) {
	return f.plain, f.kind == FieldPlain
}

// Lookup returns the value stored for lang in a localized field.
func (f LocalizedField) Lookup(lang Lang) (string, bool) {
	for _, v := range f.values {
		if v.Lang == lang {
			return v.Value, true
		}
	}
	return "", false
}

// Values returns a copy of the localized entries in source order.
func (f LocalizedField) Values() []LocalizedValue {
	if len(f.values) == 0 {
		return nil
	}
	out := make([]LocalizedValue, len(f.values))
	copy(out, f.values)
	return out
}

// UnmarshalJSON accepts a string, an object of language -> value, or null.
// Any other shape is kept as a plain field holding its compact JSON text.
// Object values that are not strings are stringified the same way; null
// values are skipped.
func (f *LocalizedField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*f = LocalizedField{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("localized field: %w", err)
		}
		*f = Plain(s)
		return nil
	case '{':
		values, err := decodeOrderedObject(data)
		if err != nil {
			return fmt.Errorf("localized field: %w", err)
		}
		*f = Localized(values...)
		return nil
	default:
		*f = Plain(compactJSON(data))
		return nil
	}
}

// decodeOrderedObject walks the object token by token so the source order of
// languages survives; Go maps would lose it.
func decodeOrderedObject(data []byte) ([]LocalizedValue, error) {
	dec := stdjson.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var values []LocalizedValue
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key %v", tok)
		}

		var raw stdjson.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		raw = bytes.TrimSpace(raw)
		if bytes.Equal(raw, []byte("null")) {
			continue
		}

		var value string
		if len(raw) > 0 && raw[0] == '"' {
			if err := json.Unmarshal(raw, &value); err != nil {
				return nil, err
			}
		} else {
			value = compactJSON(raw)
		}
		values = append(values, LocalizedValue{Lang: NormalizeLang(key), Value: value})
	}
	return values, nil
}

func compactJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return strings.TrimSpace(string(raw))
	}
	return buf.String()
}

// MarshalJSON writes the field back in the shape it was read from.
func (f LocalizedField) MarshalJSON() ([]byte, error) {
	switch f.kind {
	case FieldPlain:
		return json.Marshal(f.plain)
	case FieldLocalized:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, v := range f.values {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(string(v.Lang))
			if err != nil {
				return nil, err
			}
			val, err := json.Marshal(v.Value)
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
			buf.Write(val)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	default:
		return []byte("null"), nil
	}
}
