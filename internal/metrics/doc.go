// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

/*
Package metrics declares the Prometheus collectors of Recomendador.

Collectors are package-level and registered on the default registry through
promauto; /metrics exposes them via promhttp.

Families:

  - recomendador_projection_*: projection latency, result sizes, memo hits
  - recomendador_session_transitions_total: named state transitions
  - recomendador_store_*: snapshot load outcomes, saves, migrations
  - recomendador_catalog_*: loaded and rejected items, unmapped labels
  - recomendador_http_*: API requests
  - recomendador_websocket_*: connected observers and messages

Helpers such as RecordProjection keep label values consistent across
callers.
*/
package metrics
