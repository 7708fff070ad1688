// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package i18n

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/recomendador/internal/logging"
	"github.com/tomtom215/recomendador/internal/models"
)

// Dictionary is a read-only set of UI strings per language. Nested YAML
// keys are addressed with dots: "categories.movies".
type Dictionary struct {
	fallback models.Lang
	langs    map[models.Lang]*koanf.Koanf
}

// NewDictionary returns an empty dictionary; every lookup yields the key.
func NewDictionary(fallback models.Lang) *Dictionary {
	return &Dictionary{fallback: fallback, langs: make(map[models.Lang]*koanf.Koanf)}
}

// LoadDictionary reads "<lang>.yaml" (or ".yml") for every supported
// language found in dir. A missing file is logged and skipped; a file that
// fails to parse is an error.
func LoadDictionary(dir string, fallback models.Lang, supported []models.Lang) (*Dictionary, error) {
	d := NewDictionary(fallback)
	if dir == "" {
		return d, nil
	}

	for _, lang := range supported {
		path, ok := findDictionaryFile(dir, lang)
		if !ok {
			logging.Debug().Str("lang", string(lang)).Str("dir", dir).Msg("No translation file for language")
			continue
		}

		k := koanf.New(".")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load translations %s: %w", path, err)
		}
		d.langs[lang] = k
		logging.Info().Str("lang", string(lang)).Int("keys", len(k.Keys())).Msg("Loaded translations")
	}
	return d, nil
}

func findDictionaryFile(dir string, lang models.Lang) (string, bool) {
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(dir, string(lang)+ext)
		if _, err := os.Stat(path); err == nil {
			return path, true
		} else if !errors.Is(err, os.ErrNotExist) {
			logging.Warn().Err(err).Str("path", path).Msg("Cannot stat translation file")
		}
	}
	return "", false
}

// T returns the string for key in lang, then in the fallback language, then
// key itself.
func (d *Dictionary) T(lang models.Lang, key string) string {
	if s, ok := d.Lookup(lang, key); ok {
		return s
	}
	if s, ok := d.Lookup(d.fallback, key); ok {
		return s
	}
	return key
}

// Lookup returns the string stored for key in lang only.
func (d *Dictionary) Lookup(lang models.Lang, key string) (string, bool) {
	k, ok := d.langs[lang]
	if !ok || !k.Exists(key) {
		return "", false
	}
	s := strings.TrimSpace(k.String(key))
	return s, s != ""
}

// Languages lists the languages with a loaded translation file.
func (d *Dictionary) Languages() []models.Lang {
	out := make([]models.Lang, 0, len(d.langs))
	for l := range d.langs {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
