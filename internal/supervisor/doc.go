// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

/*
Package supervisor runs the long-lived services under a suture v4 tree.

	RootSupervisor ("recomendador")
	├── CatalogSupervisor ("catalog-layer")
	│   └── CatalogReloadService (if CATALOG_RELOAD_INTERVAL > 0)
	├── MessagingSupervisor ("messaging-layer")
	│   └── WebSocketHubService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services restart with suture's backoff; each layer counts its own
failures. Lifecycle events go to slog through sutureslog, and main wires
that slog logger onto zerolog with logging.NewSlogLogger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	err = tree.Serve(ctx)

The service wrappers live in the services subpackage.
*/
package supervisor
