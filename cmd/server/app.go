// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/recomendador/internal/api"
	"github.com/tomtom215/recomendador/internal/catalog"
	"github.com/tomtom215/recomendador/internal/config"
	"github.com/tomtom215/recomendador/internal/i18n"
	"github.com/tomtom215/recomendador/internal/logging"
	"github.com/tomtom215/recomendador/internal/models"
	"github.com/tomtom215/recomendador/internal/session"
	"github.com/tomtom215/recomendador/internal/store"
	"github.com/tomtom215/recomendador/internal/supervisor"
	"github.com/tomtom215/recomendador/internal/supervisor/services"
	ws "github.com/tomtom215/recomendador/internal/websocket"
)

// app holds the wired components between startup and shutdown.
type app struct {
	cfg         *config.Config
	store       *store.Store
	session     *session.Session
	dict        *i18n.Dictionary
	hub         *ws.Hub
	reloader    *catalogReloader
	server      *http.Server
	unsubscribe func()
}

// newApp opens the state store, restores the session, loads the catalog
// and builds the HTTP surface. Nothing runs until serve is called.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	backend, err := store.OpenBackend(store.BackendConfig{
		Type:     store.BackendType(cfg.Store.Backend),
		Path:     cfg.Store.Path,
		InMemory: cfg.Store.InMemory,
	})
	if err != nil {
		return nil, fmt.Errorf("open state store: %w", err)
	}
	st := store.New(backend, cfg.Store.Key)

	languages := cfg.Catalog.Languages()
	sess := session.New(session.Options{
		Store: st,
		Projector: catalog.NewProjector(catalog.ProjectorConfig{
			RegionalTags: cfg.Catalog.RegionalTags,
			CacheSize:    cfg.Catalog.ProjectionCacheSize,
			CacheTTL:     cfg.Catalog.ProjectionCacheTTL,
		}),
		SampleSize:         cfg.Catalog.HomeSampleSize,
		DefaultLanguage:    models.NormalizeLang(cfg.Catalog.DefaultLanguage),
		SupportedLanguages: languages,
	})

	if !sess.Restore(ctx) {
		logging.Info().Msg("No saved session, starting at home")
	}

	// A catalog directory that cannot be read leaves the restored catalog
	// (possibly empty) in place; health reports degraded until a reload works.
	reloader := newCatalogReloader(cfg.Catalog.DataDir, sess)
	if _, err := reloader.Reload(ctx); err != nil {
		logging.Warn().Err(err).Str("dir", cfg.Catalog.DataDir).Msg("Catalog not loaded at startup")
	}

	// The fallback is the configured default, not a language restored from
	// the snapshot.
	dict, err := i18n.LoadDictionary(cfg.I18n.DictionaryDir, sess.DefaultLanguage(), languages)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("load translations: %w", err)
	}

	hub := ws.NewHub()
	unsubscribe := sess.Subscribe(hub.Observe)

	handler := api.NewHandler(sess, api.HandlerOptions{
		Dictionary:  dict,
		Hub:         hub,
		CORSOrigins: cfg.Server.CORSOrigins,
	})
	router := api.NewRouter(handler, api.NewChiMiddleware(middlewareConfig(cfg.Server)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	return &app{
		cfg:         cfg,
		store:       st,
		session:     sess,
		dict:        dict,
		hub:         hub,
		reloader:    reloader,
		server:      server,
		unsubscribe: unsubscribe,
	}, nil
}

func middlewareConfig(sc config.ServerConfig) *api.ChiMiddlewareConfig {
	mc := api.DefaultChiMiddlewareConfig()
	mc.CORSAllowedOrigins = sc.CORSOrigins
	if sc.RateLimitReqs > 0 {
		mc.RateLimitRequests = sc.RateLimitReqs
	}
	if sc.RateLimitWindow > 0 {
		mc.RateLimitWindow = sc.RateLimitWindow
	}
	mc.RateLimitDisabled = sc.RateLimitDisabled
	return mc
}

// buildTree places the long-running services in their supervisor layers.
func (a *app) buildTree() (*supervisor.SupervisorTree, error) {
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		return nil, err
	}

	if interval := a.cfg.Catalog.ReloadInterval; interval > 0 {
		tree.AddCatalogService(services.NewCatalogReloadService(a.reloader, interval))
		logging.Info().Dur("interval", interval).Msg("Catalog reloader added to supervisor tree")
	}

	tree.AddMessagingService(services.NewWebSocketHubService(a.hub))
	logging.Info().Msg("WebSocket hub added to supervisor tree")

	tree.AddAPIService(services.NewHTTPServerService(a.server, 10*time.Second))
	logging.Info().Str("addr", a.server.Addr).Msg("HTTP server service added")
	return tree, nil
}

// serve runs the supervisor tree until ctx is canceled.
func (a *app) serve(ctx context.Context) error {
	tree, err := a.buildTree()
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// The tree sends exactly one result once every layer has stopped.
	var serveErr error
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
		serveErr = err
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}
	return serveErr
}

// close detaches the hub and closes the state store.
func (a *app) close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	if err := a.store.Close(); err != nil {
		return fmt.Errorf("close state store: %w", err)
	}
	return nil
}
