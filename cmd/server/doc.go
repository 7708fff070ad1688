// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

/*
Package main is the entry point for the Recomendador server.

Recomendador serves a bilingual (Spanish/English) catalog of recommended
movies, series, books, comics, music, games, podcasts and documentaries.
One browsing session (view, filters and language) lives in the server; it is
driven over a JSON API and streamed to websocket clients.

# Application Architecture

	RootSupervisor ("recomendador")
	├── CatalogSupervisor ("catalog-layer")
	│   └── Catalog reloader (when CATALOG_RELOAD_INTERVAL > 0)
	├── MessagingSupervisor ("messaging-layer")
	│   └── WebSocket Hub (session state broadcasts)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: koanf with defaults, YAML file and environment
 2. Logging: zerolog with JSON/console output modes
 3. State store: Badger (or memory) holding the session snapshot
 4. Session: restored from the snapshot when one exists
 5. Catalog: <category>.json files from CATALOG_DATA_DIR
 6. Translations: <lang>.yaml files from I18N_DICTIONARY_DIR
 7. WebSocket hub subscribed to session transitions
 8. Supervisor tree and HTTP server

# Configuration

See package config for the full list. The most used variables:

	CATALOG_DATA_DIR=./data/catalog
	STORE_BACKEND=badger          # or memory
	STORE_PATH=./data/state
	DEFAULT_LANGUAGE=es
	HTTP_PORT=3857
	LOG_LEVEL=info
	LOG_FORMAT=json               # or console

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains with a
10s timeout, websocket clients receive a close frame, and the state store is
closed last.

# Example Usage

	export CATALOG_DATA_DIR=/srv/recomendador/catalog
	export CATALOG_RELOAD_INTERVAL=5m
	./recomendador
*/
package main
