// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

/*
Package config loads and validates the Recomendador configuration.

# Sources

Configuration is layered with koanf, later sources overriding earlier ones:

 1. Built-in defaults (structs provider)
 2. Optional YAML file: CONFIG_PATH, else config.yaml, config.yml,
    /etc/recomendador/config.yaml
 3. Environment variables, through an explicit mapping table

Unmapped environment variables are ignored.

# Environment Variables

Catalog:
  - CATALOG_DATA_DIR: directory holding <category>.json files (default: ./data/catalog)
  - DEFAULT_LANGUAGE: initial UI language (default: es)
  - SUPPORTED_LANGUAGES: comma-separated UI languages (default: es,en)
  - HOME_SAMPLE_SIZE: number of home picks (default: 12)
  - REGIONAL_TAGS: comma-separated tags marking regional cinema
  - PROJECTION_CACHE_SIZE, PROJECTION_CACHE_TTL: projection memo bounds
  - CATALOG_RELOAD_INTERVAL: re-read the catalog directory this often (default: 0, disabled)

Store:
  - STORE_BACKEND: badger or memory (default: badger)
  - STORE_PATH: Badger directory (default: ./data/state)
  - STORE_KEY: the single snapshot key (default: recomendador:state)
  - STORE_IN_MEMORY: run Badger without disk

I18n:
  - I18N_DICTIONARY_DIR: directory of <lang>.yaml translation files

Server:
  - HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT
  - CORS_ORIGINS: comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Invalid configuration")
	}
*/
package config
