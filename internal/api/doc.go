// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

/*
Package api exposes one session over HTTP using the Chi router.

The surface is thin: every write endpoint maps onto exactly one session
transition and answers with the resulting state, and every read endpoint
is a projection of the current state. Nothing here holds state of its own.

# Routes

	GET  /health                                   liveness and catalog size
	GET  /metrics                                  Prometheus exposition
	GET  /api/v1/state                             current session state
	GET  /api/v1/items                             visible items for the filters
	GET  /api/v1/picks                             home daily picks
	GET  /api/v1/categories                        categories with item counts
	GET  /api/v1/categories/{category}/subcategories
	GET  /api/v1/items/{category}/{id}             one item
	POST /api/v1/navigation/{home,categories,back,not-found}
	POST /api/v1/navigation/category/{category}
	POST /api/v1/navigation/item/{category}/{id}
	POST /api/v1/navigation/overlay/{overlay}
	POST /api/v1/navigation/overlay/close
	POST /api/v1/filters/subcategory               {"subcategory": "..."}
	POST /api/v1/filters/{masterpiece,regional,reset}
	POST /api/v1/filters/{podcast,documentary}-language/{lang}
	PUT  /api/v1/language/{lang}
	GET  /api/v1/ws                                state push over websocket

# Responses

Every JSON response uses the envelope {success, data, error, meta}; see
APIResponse. Category path parameters accept Spanish and English aliases.

# Middleware

Global: request id with logging context, real IP, panic recovery, CORS.
The /api/v1 group adds rate limiting, security headers and request metrics.
*/
package api
