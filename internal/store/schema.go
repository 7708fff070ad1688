// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package store

import (
	"slices"
	"time"

	"github.com/tomtom215/recomendador/internal/models"
)

// CurrentVersion is the schema version written by Save.
const CurrentVersion = 2

// Snapshot is the persisted allow-list.
type Snapshot struct {
	Version  int                  `json:"version"`
	Language models.Lang          `json:"language,omitempty"`
	Filters  Filters              `json:"filters"`
	Catalog  []models.CatalogItem `json:"catalog,omitempty"`
	SavedAt  time.Time            `json:"saved_at"`
}

// Filters is the persisted part of the filter state.
type Filters struct {
	Category             models.Category `json:"category,omitempty"`
	Masterpiece          bool            `json:"masterpiece"`
	RegionalCinema       bool            `json:"regional_cinema"`
	PodcastLanguages     []models.Lang   `json:"podcast_languages"`
	DocumentaryLanguages []models.Lang   `json:"documentary_languages"`
}

// Equal compares filters, treating nil and empty language lists alike.
func (f Filters) Equal(o Filters) bool {
	return f.Category == o.Category &&
		f.Masterpiece == o.Masterpiece &&
		f.RegionalCinema == o.RegionalCinema &&
		slices.Equal(f.PodcastLanguages, o.PodcastLanguages) &&
		slices.Equal(f.DocumentaryLanguages, o.DocumentaryLanguages)
}

// snapshotV1 is the first schema: single-valued language filters stored as
// plain strings, flat toggle names.
type snapshotV1 struct {
	Version                int                  `json:"version"`
	Lang                   string               `json:"lang"`
	SelectedCategory       string               `json:"selectedCategory"`
	IsMasterpieceActive    bool                 `json:"isMasterpieceActive"`
	IsRegionalCinemaActive bool                 `json:"isRegionalCinemaActive"`
	PodcastLanguage        string               `json:"podcastLanguage"`
	DocumentaryLanguage    string               `json:"documentaryLanguage"`
	Catalog                []models.CatalogItem `json:"catalog"`
}
