// Copyright (c) 2025-2026 Wolv Events
// SPDX-License-Identifier: GPL-3.0-or-later

package sitedata

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wolvhq/wolv-site/internal/mirror"
)

// Merger is the contract singleton content satisfies: typed partial
// merge returning the modified copy.
type Merger[T, P any] interface {
	Merge(patch P, now time.Time) T
}

// Singleton is the site data store for single-row content (site
// settings, about copy). Same shape as Collection, for one value.
type Singleton[T Merger[T, P], P any] struct {
	name     string
	defaults T
	mirror   *mirror.Typed[T]
	source   SingletonSource[T]
	log      *slog.Logger

	mu      sync.Mutex
	state   State
	lastErr string
	value   T

	refreshSeq atomic.Uint64

	writes sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// Value is the synchronous read view of a singleton.
type Value[T any] struct {
	Value T
	State State
	Err   string
}

// NewSingleton creates a singleton store seeded with a default value.
// A nil source disables remote reconciliation; content then lives in
// memory and the local mirror only.
func NewSingleton[T Merger[T, P], P any](name string, defaults T, store mirror.Store, key string, source SingletonSource[T], log *slog.Logger) *Singleton[T, P] {
	if log == nil {
		log = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Singleton[T, P]{
		name:     name,
		defaults: defaults,
		mirror:   mirror.NewTyped[T](store, key),
		source:   source,
		log:      log.With("collection", name),
		value:    defaults,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Init loads the mirror fast path synchronously, then reconciles with
// the remote store in the background. Re-entrant calls are no-ops.
func (s *Singleton[T, P]) Init(ctx context.Context) {
	s.mu.Lock()
	if s.state != StateUninitialized {
		s.mu.Unlock()
		return
	}
	s.state = StateLoading
	s.mu.Unlock()

	if cached, ok := s.mirror.Load(ctx); ok {
		s.mu.Lock()
		s.value = cached
		s.mu.Unlock()
	}

	if s.source == nil {
		s.mu.Lock()
		s.state = StateReady
		s.mu.Unlock()
		return
	}

	s.writes.Add(1)
	go func() {
		defer s.writes.Done()
		if err := s.Refresh(s.ctx); err != nil {
			s.log.Warn("initial remote fetch failed, serving last known content", "error", err)
		}
	}()
}

// Query returns the current value. It never blocks on I/O.
func (s *Singleton[T, P]) Query() Value[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Value[T]{Value: s.value, State: s.state, Err: s.lastErr}
}

// Refresh forces a remote fetch with last-issued-wins semantics. An
// absent remote row leaves the current value in place.
func (s *Singleton[T, P]) Refresh(ctx context.Context) error {
	if s.source == nil {
		return ErrRemoteDisabled
	}

	seq := s.refreshSeq.Add(1)

	value, ok, err := s.source.Fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.refreshSeq.Load() {
		return nil
	}

	if err != nil {
		s.state = StateReady
		s.lastErr = "failed to load " + s.name + " from the remote store"
		return err
	}

	if ok {
		s.value = value
		s.saveMirrorLocked()
	}
	s.state = StateReady
	s.lastErr = ""
	return nil
}

// Update merges the patch into the value, persists the mirror
// synchronously, and upserts the merged row remotely in the background.
func (s *Singleton[T, P]) Update(patch P) {
	s.mu.Lock()
	s.value = s.value.Merge(patch, time.Now().UTC())
	merged := s.value
	s.saveMirrorLocked()
	s.mu.Unlock()

	if s.source == nil {
		return
	}
	s.writes.Add(1)
	go func() {
		defer s.writes.Done()
		if err := s.source.Upsert(s.ctx, merged); err != nil {
			s.log.Warn("remote write failed", "op", "upsert", "error", err)
			s.mu.Lock()
			s.lastErr = "failed to sync " + s.name + " to the remote store"
			s.mu.Unlock()
		}
	}()
}

// Flush waits for outstanding background remote writes to settle.
func (s *Singleton[T, P]) Flush() {
	s.writes.Wait()
}

// Close cancels in-flight remote work and waits for it to finish.
func (s *Singleton[T, P]) Close() {
	s.cancel()
	s.writes.Wait()
}

// saveMirrorLocked persists the value to the local mirror, swallowing
// failures. Callers hold s.mu.
func (s *Singleton[T, P]) saveMirrorLocked() {
	if err := s.mirror.Save(s.ctx, s.value); err != nil {
		s.log.Warn("mirror save failed", "error", err)
	}
}
