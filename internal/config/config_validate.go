// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package config

import (
	"fmt"

	"github.com/tomtom215/recomendador/internal/logging"
	"github.com/tomtom215/recomendador/internal/models"
	"github.com/tomtom215/recomendador/internal/validation"
)

// Validate checks field rules first, then the cross-field constraints.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}
	if err := c.validateLanguages(); err != nil {
		return err
	}
	if err := c.validateStore(); err != nil {
		return err
	}
	return c.validateLogging()
}

// validateLanguages requires the default language to be supported.
func (c *Config) validateLanguages() error {
	def := models.NormalizeLang(c.Catalog.DefaultLanguage)
	for _, l := range c.Catalog.Languages() {
		if l == def {
			return nil
		}
	}
	return fmt.Errorf("DEFAULT_LANGUAGE %q is not in SUPPORTED_LANGUAGES %v", c.Catalog.DefaultLanguage, c.Catalog.SupportedLanguages)
}

// validateStore requires a directory for an on-disk Badger store.
func (c *Config) validateStore() error {
	if c.Store.Backend == "badger" && !c.Store.InMemory && c.Store.Path == "" {
		return fmt.Errorf("STORE_PATH is required when STORE_BACKEND=badger")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if c.Logging.Level != "" && !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	if c.Logging.Format != "" && !logging.ValidFormat(c.Logging.Format) {
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// ShouldWarnAboutCORS reports a wildcard origin, which is fine for local
// use but worth a startup warning.
func (c *Config) ShouldWarnAboutCORS() bool {
	for _, o := range c.Server.CORSOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

// LoggingSettings converts the logging section for logging.Init.
func (c *Config) LoggingSettings() logging.Config {
	lc := logging.DefaultConfig()
	if c.Logging.Level != "" {
		lc.Level = c.Logging.Level
	}
	if c.Logging.Format != "" {
		lc.Format = c.Logging.Format
	}
	lc.Caller = c.Logging.Caller
	return lc
}
