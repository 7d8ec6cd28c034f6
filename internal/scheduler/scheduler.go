// Copyright (c) 2025-2026 Wolv Events
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/wolvhq/wolv-site/internal/sitedata"
)

// refreshTimeout bounds one background refresh pass.
const refreshTimeout = 30 * time.Second

// Scheduler periodically refreshes site content from the remote store
// so long-running processes converge after the optimistic-write
// inconsistency window.
type Scheduler struct {
	store  *sitedata.Store
	cron   *cron.Cron
	logger *slog.Logger
}

// New creates a new scheduler instance.
func New(store *sitedata.Store, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		store:  store,
		cron:   cron.New(),
		logger: logger,
	}
}

// Start registers the refresh job with the given cron spec
// (e.g. "@every 5m") and begins the scheduler.
func (s *Scheduler) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		if err := s.store.RefreshAll(ctx); err != nil {
			s.logger.Warn("background content refresh failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "spec", spec)
	return nil
}

// Stop gracefully stops the scheduler.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}
