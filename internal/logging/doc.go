// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

// Package logging is the zerolog-based structured logging layer of
// Recomendador.
//
// A global logger is configured once at startup with Init and used through
// level helpers:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Int("items", n).Msg("Catalog loaded")
//	logging.Warn().Err(err).Msg("Snapshot storage unavailable, using defaults")
//
// Request-scoped logging goes through the Ctx helpers, which add the
// request_id and correlation_id stored in the context:
//
//	logging.CtxDebug(ctx).Str("transition", name).Msg("Session transition")
//
// Always terminate an event with Msg or Send; an unterminated event is
// never written.
//
// # Output
//
// JSON (default):
//
//	{"level":"info","time":"2026-03-01T10:30:00Z","message":"Server starting","port":3857}
//
// Console:
//
//	10:30:00 INF Server starting port=3857
//
// # slog
//
// NewSlogLogger bridges slog consumers (the suture supervisor through
// sutureslog) onto the same zerolog output.
//
// All exported functions are safe for concurrent use.
package logging
