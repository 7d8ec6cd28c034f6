// Copyright (c) 2025-2026 Wolv Events
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides non-API HTTP handlers.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/wolvhq/wolv-site/internal/mirror"
	"github.com/wolvhq/wolv-site/internal/sitedata"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	store     *sitedata.Store
	mirror    mirror.Store
	startTime time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(store *sitedata.Store, m mirror.Store) *HealthHandler {
	return &HealthHandler{
		store:     store,
		mirror:    m,
		startTime: time.Now(),
	}
}

// StartTime returns when the handler (and application) was started.
func (h *HealthHandler) StartTime() time.Time {
	return h.startTime
}

// HealthStatus represents the overall health status.
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Uptime    string            `json:"uptime"`
	Stores    map[string]string `json:"stores"`
}

// Health handles GET /health requests. The service is degraded when
// any content store carries a remote error; content is still served.
func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request) {
	stores := map[string]string{
		"events":      h.storeStatus(h.store.Events.Query().State.String(), h.store.Events.Query().Err),
		"gallery":     h.storeStatus(h.store.Gallery.Query().State.String(), h.store.Gallery.Query().Err),
		"aftermovies": h.storeStatus(h.store.Aftermovies.Query().State.String(), h.store.Aftermovies.Query().Err),
		"settings":    h.storeStatus(h.store.Settings.Query().State.String(), h.store.Settings.Query().Err),
		"about":       h.storeStatus(h.store.About.Query().State.String(), h.store.About.Query().Err),
	}

	overall := "healthy"
	for _, s := range stores {
		if s != "ready" {
			overall = "degraded"
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(HealthStatus{
		Status:    overall,
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Stores:    stores,
	})
}

func (h *HealthHandler) storeStatus(state, errMsg string) string {
	if errMsg != "" {
		return "degraded"
	}
	return state
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "alive",
	})
}

// Readiness handles GET /health/ready. Ready once the mirror answers;
// a remote outage does not make the service unready.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	if err := h.checkMirror(ctx); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status": "not_ready",
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "ready",
	})
}

func (h *HealthHandler) checkMirror(ctx context.Context) error {
	_, err := h.mirror.Load(ctx, mirror.KeySettings)
	if err != nil && err != mirror.ErrMiss {
		return err
	}
	return nil
}
