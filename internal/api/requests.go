// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/recomendador/internal/validation"
)

// maxRequestBody bounds JSON request bodies.
const maxRequestBody = 16 * 1024

// SubcategoryRequest selects a subcategory label or sentinel. An empty
// label clears the selection.
type SubcategoryRequest struct {
	Subcategory string `json:"subcategory" validate:"max=200"`
}

// languageParam validates a language path parameter.
type languageParam struct {
	Lang string `json:"lang" validate:"required,catalog_lang"`
}

// decodeAndValidate reads a JSON body into dst and validates it. On failure
// the error response has been written and false is returned.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		WriteBadRequest(w, r, "Invalid request body")
		return false
	}
	return validateRequest(w, r, dst)
}

func validateRequest(w http.ResponseWriter, r *http.Request, v any) bool {
	if verr := validation.ValidateStruct(v); verr != nil {
		NewResponseWriter(w, r).ValidationError(verr.Error(), verr.Details())
		return false
	}
	return true
}
