// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/recomendador/internal/models"
)

// Config is the complete application configuration.
type Config struct {
	Catalog CatalogConfig `koanf:"catalog"`
	Store   StoreConfig   `koanf:"store"`
	I18n    I18nConfig    `koanf:"i18n"`
	Server  ServerConfig  `koanf:"server"`
	Logging LoggingConfig `koanf:"logging"`
}

// CatalogConfig locates the catalog and tunes projection.
type CatalogConfig struct {
	// DataDir holds one <category>.json array per category.
	DataDir string `koanf:"data_dir" validate:"required"`

	DefaultLanguage    string   `koanf:"default_language" validate:"required,catalog_lang"`
	SupportedLanguages []string `koanf:"supported_languages" validate:"min=1,dive,catalog_lang"`

	// HomeSampleSize is the number of random picks shown at home.
	HomeSampleSize int `koanf:"home_sample_size" validate:"min=1,max=100"`

	// RegionalTags replace the built-in regional cinema markers when set.
	RegionalTags []string `koanf:"regional_tags"`

	ProjectionCacheSize int           `koanf:"projection_cache_size" validate:"gte=0"`
	ProjectionCacheTTL  time.Duration `koanf:"projection_cache_ttl" validate:"gte=0"`

	// ReloadInterval re-reads DataDir periodically; 0 disables reloading.
	ReloadInterval time.Duration `koanf:"reload_interval" validate:"gte=0"`
}

// Languages returns SupportedLanguages normalized, duplicates dropped.
func (c CatalogConfig) Languages() []models.Lang {
	out := make([]models.Lang, 0, len(c.SupportedLanguages))
	for _, s := range c.SupportedLanguages {
		l := models.NormalizeLang(s)
		if l == "" || containsLang(out, l) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// StoreConfig selects the snapshot backend.
type StoreConfig struct {
	Backend  string `koanf:"backend" validate:"required,oneof=badger memory"`
	Path     string `koanf:"path"`
	Key      string `koanf:"key" validate:"required"`
	InMemory bool   `koanf:"in_memory"`
}

// I18nConfig locates the translation dictionaries.
type I18nConfig struct {
	// DictionaryDir holds <lang>.yaml files. Empty disables the dictionary.
	DictionaryDir string `koanf:"dictionary_dir"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`

	CORSOrigins []string `koanf:"cors_origins"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"gte=0"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gte=0"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// Addr returns host:port for net/http.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	// Level: trace, debug, info, warn, error. Default: info
	Level string `koanf:"level"`

	// Format: json or console. Default: json
	Format string `koanf:"format"`

	Caller bool `koanf:"caller"`
}

func containsLang(list []models.Lang, l models.Lang) bool {
	for _, v := range list {
		if v == l {
			return true
		}
	}
	return false
}
