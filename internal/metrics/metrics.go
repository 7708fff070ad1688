// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "recomendador"

// Label value used when a projection runs without a selected category.
const AllCategories = "all"

var (
	// Projection
	ProjectionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "projection_duration_seconds",
			Help:      "Time spent projecting the catalog for a filter state",
			Buckets:   []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01, .025, .05},
		},
		[]string{"category"},
	)

	ProjectionResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "projection_results",
			Help:      "Number of items returned by a projection",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
		[]string{"category"},
	)

	ProjectionCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "projection_cache_hits_total",
			Help:      "Projections served from the memo cache",
		},
	)

	ProjectionCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "projection_cache_misses_total",
			Help:      "Projections computed because no memoized result existed",
		},
	)

	// Session
	SessionTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_transitions_total",
			Help:      "State transitions applied to the session",
		},
		[]string{"transition"},
	)

	SessionObservers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "session_observers",
			Help:      "Subscribed session observers",
		},
	)

	// Store
	StoreLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_loads_total",
			Help:      "Snapshot loads by outcome (hit, miss, corrupt, unsupported, unavailable)",
		},
		[]string{"outcome"},
	)

	StoreSaves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_saves_total",
			Help:      "Snapshot writes by result",
		},
		[]string{"result"},
	)

	StoreMigrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_migrations_total",
			Help:      "Snapshot schema migrations applied, by source version",
		},
		[]string{"from_version"},
	)

	StoreSnapshotBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_snapshot_bytes",
			Help:      "Size of the last snapshot written",
		},
	)

	// Catalog
	CatalogItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_items",
			Help:      "Items in the active catalog per category",
		},
		[]string{"category"},
	)

	CatalogRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_rejected_items_total",
			Help:      "Raw catalog records dropped during loading",
		},
		[]string{"reason"},
	)

	UnmappedSubcategories = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_unmapped_subcategories",
			Help:      "Distinct subcategory labels with no canonical mapping",
		},
	)

	// HTTP
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "API requests by method, route pattern and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "API request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// WebSocket
	WebSocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "websocket_connections",
			Help:      "Connected websocket observers",
		},
	)

	WebSocketMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "websocket_messages_total",
			Help:      "Websocket messages by type",
		},
		[]string{"type"},
	)

	WebSocketDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "websocket_dropped_total",
			Help:      "Clients dropped because their send buffer was full",
		},
	)
)

// RecordProjection records one computed projection.
func RecordProjection(category string, results int, duration time.Duration) {
	if category == "" {
		category = AllCategories
	}
	ProjectionDuration.WithLabelValues(category).Observe(duration.Seconds())
	ProjectionResults.WithLabelValues(category).Observe(float64(results))
}

// RecordProjectionCache counts a memo lookup.
func RecordProjectionCache(hit bool) {
	if hit {
		ProjectionCacheHits.Inc()
	} else {
		ProjectionCacheMisses.Inc()
	}
}

// RecordTransition counts a named session transition.
func RecordTransition(name string) {
	SessionTransitions.WithLabelValues(name).Inc()
}

// RecordStoreLoad counts a snapshot load outcome.
func RecordStoreLoad(outcome string) {
	StoreLoads.WithLabelValues(outcome).Inc()
}

// RecordStoreSave counts a snapshot write and its size.
func RecordStoreSave(size int, err error) {
	if err != nil {
		StoreSaves.WithLabelValues("error").Inc()
		return
	}
	StoreSaves.WithLabelValues("ok").Inc()
	StoreSnapshotBytes.Set(float64(size))
}

// RecordMigration counts a schema migration step out of fromVersion.
func RecordMigration(fromVersion int) {
	StoreMigrations.WithLabelValues(strconv.Itoa(fromVersion)).Inc()
}

// SetCatalogItems replaces the per-category item gauges.
func SetCatalogItems(counts map[string]int) {
	CatalogItems.Reset()
	for cat, n := range counts {
		CatalogItems.WithLabelValues(cat).Set(float64(n))
	}
}

// RecordRejectedItem counts a dropped raw record.
func RecordRejectedItem(reason string) {
	CatalogRejected.WithLabelValues(reason).Inc()
}

// RecordHTTPRequest records an API request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
