// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/canonical/board-service/internal/logging"
	"github.com/canonical/board-service/internal/monitoring"
	"github.com/canonical/board-service/internal/tracing"
	"github.com/canonical/board-service/internal/version"
)

// PingerInterface is what readiness probes against, in practice the
// database client.
type PingerInterface interface {
	Ping(context.Context) error
}

type API struct {
	pinger PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

type health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/ready", a.ready)
	mux.Get("/api/v0/version", a.version)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	json.NewEncoder(w).Encode(health{Status: "ok", Version: version.Version})
}

func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")

	availability := 1.0
	statusCode := http.StatusOK
	payload := health{Status: "ok", Version: version.Version}

	if err := a.pinger.Ping(ctx); err != nil {
		a.logger.Errorf("database readiness check failed: %v", err)
		availability = 0
		statusCode = http.StatusServiceUnavailable
		payload.Status = "unavailable"
	}

	if err := a.monitor.SetDependencyAvailability(map[string]string{"dependency": "database"}, availability); err != nil {
		a.logger.Errorf("failed to set dependency availability metric: %v", err)
	}

	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.version")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	json.NewEncoder(w).Encode(map[string]string{"version": version.Version})
}

func NewAPI(pinger PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.pinger = pinger

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
