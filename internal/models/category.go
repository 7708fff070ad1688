// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned by ParseCategory for labels outside the closed set.
var ErrUnknownCategory = errors.New("unknown category")

// Category identifies one of the fixed catalog sections.
type Category string

const (
	CategoryMovies        Category = "movies"
	CategorySeries        Category = "series"
	CategoryBooks         Category = "books"
	CategoryComics        Category = "comics"
	CategoryMusic         Category = "music"
	CategoryVideogames    Category = "videogames"
	CategoryBoardgames    Category = "boardgames"
	CategoryPodcast       Category = "podcast"
	CategoryDocumentaries Category = "documentales"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryMovies,
	CategorySeries,
	CategoryBooks,
	CategoryComics,
	CategoryMusic,
	CategoryVideogames,
	CategoryBoardgames,
	CategoryPodcast,
	CategoryDocumentaries,
}

var categoryAliases = map[string]Category{
	"movies":         CategoryMovies,
	"movie":          CategoryMovies,
	"films":          CategoryMovies,
	"películas":      CategoryMovies,
	"peliculas":      CategoryMovies,
	"cine":           CategoryMovies,
	"series":         CategorySeries,
	"tv":             CategorySeries,
	"books":          CategoryBooks,
	"libros":         CategoryBooks,
	"comics":         CategoryComics,
	"cómics":         CategoryComics,
	"music":          CategoryMusic,
	"música":         CategoryMusic,
	"musica":         CategoryMusic,
	"videogames":     CategoryVideogames,
	"video games":    CategoryVideogames,
	"videojuegos":    CategoryVideogames,
	"boardgames":     CategoryBoardgames,
	"board games":    CategoryBoardgames,
	"juegos de mesa": CategoryBoardgames,
	"podcast":        CategoryPodcast,
	"podcasts":       CategoryPodcast,
	"documentales":   CategoryDocumentaries,
	"documentaries":  CategoryDocumentaries,
	"documentary":    CategoryDocumentaries,
	"documental":     CategoryDocumentaries,
}

// ParseCategory resolves a canonical id or a Spanish/English alias.
func ParseCategory(s string) (Category, error) {
	if c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Valid reports whether c belongs to the closed set.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// LanguageFiltered reports whether items of c are only shown once a content
// language has been selected.
func (c Category) LanguageFiltered() bool {
	return c == CategoryPodcast || c == CategoryDocumentaries
}

func (c Category) String() string {
	return string(c)
}
