// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/tomtom215/recomendador/internal/logging"
	"github.com/tomtom215/recomendador/internal/metrics"
	"github.com/tomtom215/recomendador/internal/models"
	"github.com/tomtom215/recomendador/internal/validation"
)

// ErrInvalidItem wraps the reason a raw record was rejected.
var ErrInvalidItem = errors.New("invalid catalog item")

// LoadReport summarizes a directory load.
type LoadReport struct {
	Files    int                     `json:"files"`
	Loaded   map[models.Category]int `json:"loaded"`
	Rejected int                     `json:"rejected"`
	Missing  []models.Category       `json:"missing,omitempty"`
}

// ValidateItem checks the minimal shape every record needs: an id and a
// known category.
func ValidateItem(it *models.CatalogItem) error {
	if verr := validation.ValidateStruct(it); verr != nil {
		return fmt.Errorf("%w: %s", ErrInvalidItem, verr.Error())
	}
	return nil
}

// CanonicalCategory rewrites a Spanish or English category alias such as
// "Movies" or "películas" to its canonical id. Unknown labels are left for
// ValidateItem to reject.
func CanonicalCategory(it *models.CatalogItem) {
	if it.Category.Valid() {
		return
	}
	if c, err := models.ParseCategory(string(it.Category)); err == nil {
		it.Category = c
	}
}

// Decode reads a JSON array of records supplied for cat. Records without a
// category inherit cat; aliases are resolved to canonical ids. Malformed or invalid records are logged, counted
// and skipped; only a body that is not an array is an error.
func Decode(r io.Reader, cat models.Category) ([]models.CatalogItem, int, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, 0, fmt.Errorf("decode %s catalog: %w", cat, err)
	}

	items := make([]models.CatalogItem, 0, len(raw))
	rejected := 0
	for i, rec := range raw {
		var it models.CatalogItem
		if err := json.Unmarshal(rec, &it); err != nil {
			logging.Warn().Err(err).Str("category", string(cat)).Int("index", i).Msg("Malformed catalog record skipped")
			metrics.RecordRejectedItem("malformed")
			rejected++
			continue
		}
		if it.Category == "" {
			it.Category = cat
		}
		CanonicalCategory(&it)
		if err := ValidateItem(&it); err != nil {
			logging.Warn().
				Str("category", string(it.Category)).
				Str("id", it.ID).
				Int("index", i).
				Str("reason", err.Error()).
				Msg("Invalid catalog record skipped")
			metrics.RecordRejectedItem("invalid")
			rejected++
			continue
		}
		items = append(items, it)
	}
	return items, rejected, nil
}

// LoadDir reads "<category>.json" for every category from dir. Missing
// files are reported, files that do not decode are logged and skipped. Only
// an unreadable directory fails the load.
func LoadDir(dir string) ([]models.CatalogItem, LoadReport, error) {
	report := LoadReport{Loaded: make(map[models.Category]int)}
	if _, err := os.Stat(dir); err != nil {
		return nil, report, fmt.Errorf("catalog directory %s: %w", dir, err)
	}

	var all []models.CatalogItem
	for _, cat := range models.Categories {
		path := filepath.Join(dir, string(cat)+".json")
		items, rejected, err := loadFile(path, cat)
		switch {
		case errors.Is(err, os.ErrNotExist):
			report.Missing = append(report.Missing, cat)
			logging.Debug().Str("path", path).Msg("No catalog file for category")
			continue
		case err != nil:
			logging.Warn().Err(err).Str("path", path).Msg("Catalog file skipped")
			continue
		}

		report.Files++
		report.Rejected += rejected
		for i := range items {
			report.Loaded[items[i].Category]++
		}
		all = append(all, items...)
	}

	logging.Info().
		Int("files", report.Files).
		Int("items", len(all)).
		Int("rejected", report.Rejected).
		Msg("Catalog loaded")
	return all, report, nil
}

func loadFile(path string, cat models.Category) ([]models.CatalogItem, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = f.Close() }()
	return Decode(f, cat)
}
