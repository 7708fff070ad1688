// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/recomendador/internal/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError describes one failed rule.
type FieldError struct {
	field   string
	tag     string
	param   string
	value   any
	message string
}

// Field returns the json name of the failing field.
func (e FieldError) Field() string { return e.field }

// Tag returns the rule that failed.
func (e FieldError) Tag() string { return e.tag }

// Param returns the rule parameter ("3" for "min=3").
func (e FieldError) Param() string { return e.param }

// Value returns the rejected value.
func (e FieldError) Value() any { return e.value }

func (e FieldError) Error() string { return e.message }

// Error collects every failed rule of one struct.
type Error struct {
	fields []FieldError
}

// Fields returns the individual failures.
func (e *Error) Fields() []FieldError { return e.fields }

func (e *Error) Error() string {
	if len(e.fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.fields))
	for i, f := range e.fields {
		msgs[i] = f.message
	}
	return strings.Join(msgs, "; ")
}

// Details renders the failures for an API error body.
func (e *Error) Details() map[string]any {
	fields := make([]map[string]any, len(e.fields))
	for i, f := range e.fields {
		fields[i] = map[string]any{
			"field":   f.field,
			"tag":     f.tag,
			"message": f.message,
		}
	}
	return map[string]any{"fields": fields}
}

// Validator returns the shared validator, registering the custom rules on
// first use.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				name = strings.SplitN(f.Tag.Get("koanf"), ",", 2)[0]
			}
			if name == "" {
				return f.Name
			}
			return name
		})

		// Registration only fails on an empty tag or nil func.
		_ = validate.RegisterValidation("catalog_category", func(fl validator.FieldLevel) bool {
			return models.Category(fl.Field().String()).Valid()
		})
		_ = validate.RegisterValidation("catalog_lang", func(fl validator.FieldLevel) bool {
			return models.NormalizeLang(fl.Field().String()) != ""
		})
	})
	return validate
}

// ValidateStruct checks s and returns nil or an *Error listing every failure.
func ValidateStruct(s any) *Error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &Error{fields: []FieldError{{field: "unknown", tag: "unknown", message: err.Error()}}}
	}

	fields := make([]FieldError, len(verrs))
	for i, fe := range verrs {
		fields[i] = FieldError{
			field:   fe.Field(),
			tag:     fe.Tag(),
			param:   fe.Param(),
			value:   fe.Value(),
			message: translate(fe),
		}
	}
	return &Error{fields: fields}
}

var messages = map[string]string{
	"required":         "%s is required",
	"catalog_category": "%s must be a known catalog category",
	"catalog_lang":     "%s must be a language code",
	"hostname_port":    "%s must be host:port",
	"dir":              "%s must be an existing directory",
}

var messagesWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"min":   "%s must be at least %s",
	"max":   "%s must be at most %s",
}

func translate(fe validator.FieldError) string {
	if tmpl, ok := messages[fe.Tag()]; ok {
		return fmt.Sprintf(tmpl, fe.Field())
	}
	if tmpl, ok := messagesWithParam[fe.Tag()]; ok {
		msg := fmt.Sprintf(tmpl, fe.Field(), fe.Param())
		if fe.Kind() == reflect.String && (fe.Tag() == "min" || fe.Tag() == "max") {
			msg += " characters"
		}
		return msg
	}
	return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
}
