// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package supervisor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"
)

// Layer names one child supervisor of the root.
type Layer string

const (
	// LayerCatalog runs the catalog reloader.
	LayerCatalog Layer = "catalog-layer"
	// LayerMessaging runs the websocket hub.
	LayerMessaging Layer = "messaging-layer"
	// LayerAPI runs the HTTP server.
	LayerAPI Layer = "api-layer"
)

// Layers lists the layers in start order.
var Layers = []Layer{LayerCatalog, LayerMessaging, LayerAPI}

// TreeConfig holds the suture restart policy shared by every layer. Zero
// fields take the DefaultTreeConfig value.
type TreeConfig struct {
	// FailureThreshold is the number of failures before entering backoff.
	FailureThreshold float64
	// FailureDecay is the failure decay rate in seconds.
	FailureDecay float64
	// FailureBackoff is the pause once the threshold is exceeded.
	FailureBackoff time.Duration
	// ShutdownTimeout bounds how long a stopping service may take.
	ShutdownTimeout time.Duration
}

// DefaultTreeConfig returns suture's own defaults.
func DefaultTreeConfig() TreeConfig {
	return TreeConfig{
		FailureThreshold: 5.0,
		FailureDecay:     30.0,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
}

func (c TreeConfig) withDefaults() TreeConfig {
	def := DefaultTreeConfig()
	if c.FailureThreshold == 0 {
		c.FailureThreshold = def.FailureThreshold
	}
	if c.FailureDecay == 0 {
		c.FailureDecay = def.FailureDecay
	}
	if c.FailureBackoff == 0 {
		c.FailureBackoff = def.FailureBackoff
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = def.ShutdownTimeout
	}
	return c
}

func (c TreeConfig) spec() suture.Spec {
	return suture.Spec{
		FailureThreshold: c.FailureThreshold,
		FailureDecay:     c.FailureDecay,
		FailureBackoff:   c.FailureBackoff,
		Timeout:          c.ShutdownTimeout,
	}
}

// SupervisorTree is a root supervisor with one child per Layer. A service
// that keeps crashing backs off inside its own layer; the other layers keep
// running.
type SupervisorTree struct {
	root   *suture.Supervisor
	layers map[Layer]*suture.Supervisor
	config TreeConfig
}

// NewSupervisorTree creates the tree. Lifecycle events (service panics,
// restarts, backoff) are reported to logger through sutureslog.
func NewSupervisorTree(logger *slog.Logger, config TreeConfig) (*SupervisorTree, error) {
	if logger == nil {
		return nil, fmt.Errorf("supervisor tree needs a logger")
	}
	config = config.withDefaults()

	// MustHook has a pointer receiver.
	hook := &sutureslog.Handler{Logger: logger}
	rootSpec := config.spec()
	rootSpec.EventHook = hook.MustHook()

	t := &SupervisorTree{
		root:   suture.New("recomendador", rootSpec),
		layers: make(map[Layer]*suture.Supervisor, len(Layers)),
		config: config,
	}
	// Children inherit the root's event hook when added.
	for _, layer := range Layers {
		sup := suture.New(string(layer), config.spec())
		t.root.Add(sup)
		t.layers[layer] = sup
	}
	return t, nil
}

// Root returns the root supervisor.
func (t *SupervisorTree) Root() *suture.Supervisor {
	return t.root
}

// Add places svc in layer.
func (t *SupervisorTree) Add(layer Layer, svc suture.Service) (suture.ServiceToken, error) {
	sup, ok := t.layers[layer]
	if !ok {
		return suture.ServiceToken{}, fmt.Errorf("unknown supervisor layer %q", layer)
	}
	return sup.Add(svc), nil
}

// AddCatalogService adds a service to the catalog layer.
func (t *SupervisorTree) AddCatalogService(svc suture.Service) suture.ServiceToken {
	return t.layers[LayerCatalog].Add(svc)
}

// AddMessagingService adds a service to the messaging layer.
func (t *SupervisorTree) AddMessagingService(svc suture.Service) suture.ServiceToken {
	return t.layers[LayerMessaging].Add(svc)
}

// AddAPIService adds a service to the API layer.
func (t *SupervisorTree) AddAPIService(svc suture.Service) suture.ServiceToken {
	return t.layers[LayerAPI].Add(svc)
}

// Serve runs the tree until ctx is canceled.
func (t *SupervisorTree) Serve(ctx context.Context) error {
	return t.root.Serve(ctx)
}

// ServeBackground runs the tree in a goroutine. The channel receives the
// single result of Serve.
func (t *SupervisorTree) ServeBackground(ctx context.Context) <-chan error {
	return t.root.ServeBackground(ctx)
}

// UnstoppedServiceReport lists services that outlived the shutdown timeout.
func (t *SupervisorTree) UnstoppedServiceReport() ([]suture.UnstoppedService, error) {
	return t.root.UnstoppedServiceReport()
}
