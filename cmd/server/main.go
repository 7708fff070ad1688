// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/recomendador/internal/config"
	"github.com/tomtom215/recomendador/internal/logging"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(cfg.LoggingSettings())

	logging.Info().
		Str("data_dir", cfg.Catalog.DataDir).
		Str("store_backend", cfg.Store.Backend).
		Str("default_language", cfg.Catalog.DefaultLanguage).
		Strs("supported_languages", cfg.Catalog.SupportedLanguages).
		Msg("Configuration loaded")
	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin; set CORS_ORIGINS for public deployments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize application")
	}

	serveErr := a.serve(ctx)
	if err := a.close(); err != nil {
		logging.Error().Err(err).Msg("Shutdown error")
	}
	if serveErr != nil {
		stop()
		os.Exit(1)
	}
	logging.Info().Msg("Application stopped gracefully")
}
