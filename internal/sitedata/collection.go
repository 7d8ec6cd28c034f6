// Copyright (c) 2025-2026 Wolv Events
// SPDX-License-Identifier: GPL-3.0-or-later

package sitedata

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/wolvhq/wolv-site/internal/mirror"
)

// Entity is the contract collection records satisfy: an opaque id,
// metadata stamping on create, and typed partial merge on update.
// Methods are value-based and return the modified copy.
type Entity[T, P any] interface {
	EntityID() string
	WithMeta(id string, now time.Time) T
	Merge(patch P, now time.Time) T
}

// Collection is the site data store for one content collection.
// The snapshot is exclusively owned here; consumers receive copies and
// route all writes through the documented operations.
type Collection[T Entity[T, P], P any] struct {
	name     string
	defaults []T
	mirror   *mirror.Typed[[]T]
	source   Source[T]
	log      *slog.Logger

	mu      sync.Mutex
	state   State
	lastErr string
	items   []T

	// refreshSeq orders refreshes: a response is discarded when a newer
	// refresh was issued while it was in flight.
	refreshSeq atomic.Uint64

	writes sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// Snapshot is the synchronous read view of a collection.
type Snapshot[T any] struct {
	Items []T
	State State
	// Err is a best-effort human-readable message from the last failed
	// remote operation. Non-fatal: Items is always displayable.
	Err string
}

// NewCollection creates a collection store seeded with defaults.
// A nil source disables remote reconciliation.
func NewCollection[T Entity[T, P], P any](name string, defaults []T, store mirror.Store, key string, source Source[T], log *slog.Logger) *Collection[T, P] {
	if log == nil {
		log = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Collection[T, P]{
		name:     name,
		defaults: defaults,
		mirror:   mirror.NewTyped[[]T](store, key),
		source:   source,
		log:      log.With("collection", name),
		items:    append([]T(nil), defaults...),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Init loads the mirror fast path synchronously, then reconciles with
// the remote store in the background. Calling Init again while loading
// or after completion is a no-op.
func (c *Collection[T, P]) Init(ctx context.Context) {
	c.mu.Lock()
	if c.state != StateUninitialized {
		c.mu.Unlock()
		return
	}
	c.state = StateLoading
	c.mu.Unlock()

	if cached, ok := c.mirror.Load(ctx); ok {
		c.mu.Lock()
		c.items = cached
		c.mu.Unlock()
	}

	if c.source == nil {
		c.mu.Lock()
		c.state = StateReady
		c.mu.Unlock()
		return
	}

	c.writes.Add(1)
	go func() {
		defer c.writes.Done()
		if err := c.Refresh(c.ctx); err != nil {
			c.log.Warn("initial remote fetch failed, serving last known content", "error", err)
		}
	}()
}

// Query returns the current snapshot. It never blocks on I/O; the
// returned slice is a copy the caller owns.
func (c *Collection[T, P]) Query() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot[T]{
		Items: append([]T(nil), c.items...),
		State: c.state,
		Err:   c.lastErr,
	}
}

// Get returns the record with the given id.
func (c *Collection[T, P]) Get(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Refresh forces a remote fetch. A refresh superseded by a newer one
// has its result discarded, so the last-issued caller wins and a stale
// response can never clobber a snapshot mutated after the newer refresh
// started.
func (c *Collection[T, P]) Refresh(ctx context.Context) error {
	if c.source == nil {
		return ErrRemoteDisabled
	}

	seq := c.refreshSeq.Add(1)

	items, err := c.source.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.refreshSeq.Load() {
		// Superseded while in flight.
		return nil
	}

	if err != nil {
		c.state = StateReady
		c.lastErr = "failed to load " + c.name + " from the remote store"
		return err
	}

	// The remote result replaces memory wholesale; no stale merge.
	c.items = append([]T(nil), items...)
	c.state = StateReady
	c.lastErr = ""
	c.saveMirrorLocked()
	return nil
}

// Create assigns a fresh id and timestamps, prepends the record to the
// snapshot, persists the mirror synchronously, and fires the remote
// insert asynchronously. The locally assigned record is returned
// immediately; remote confirmation is not awaited.
func (c *Collection[T, P]) Create(item T) T {
	record := item.WithMeta(uuid.NewString(), time.Now().UTC())

	c.mu.Lock()
	c.items = append([]T{record}, c.items...)
	c.saveMirrorLocked()
	c.mu.Unlock()

	c.remoteWrite("insert", func(ctx context.Context) error {
		_, err := c.source.Insert(ctx, record)
		return err
	})

	return record
}

// Update merges the patch into the matching record and bumps its
// updated timestamp. Unknown ids are a silent no-op.
func (c *Collection[T, P]) Update(id string, patch P) {
	c.mu.Lock()
	found := false
	for i, item := range c.items {
		if item.EntityID() == id {
			c.items[i] = item.Merge(patch, time.Now().UTC())
			found = true
			break
		}
	}
	if found {
		c.saveMirrorLocked()
	}
	c.mu.Unlock()

	if !found {
		return
	}

	c.remoteWrite("update", func(ctx context.Context) error {
		return c.source.Update(ctx, id, patch)
	})
}

// Delete removes the matching record. Unknown ids are a silent no-op;
// the remote delete is still requested so a record that only exists
// remotely is removed on the next refresh cycle.
func (c *Collection[T, P]) Delete(id string) {
	c.mu.Lock()
	kept := c.items[:0:0]
	found := false
	for _, item := range c.items {
		if item.EntityID() == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if found {
		c.items = kept
		c.saveMirrorLocked()
	}
	c.mu.Unlock()

	c.remoteWrite("delete", func(ctx context.Context) error {
		return c.source.Delete(ctx, id)
	})
}

// Flush waits for outstanding background remote writes to settle.
func (c *Collection[T, P]) Flush() {
	c.writes.Wait()
}

// Close cancels in-flight remote work and waits for it to finish, so a
// disposed store never observes late writes.
func (c *Collection[T, P]) Close() {
	c.cancel()
	c.writes.Wait()
}

// saveMirrorLocked persists the snapshot to the local mirror. Failures
// are swallowed: a full or broken mirror must never abort a mutation.
// Callers hold c.mu, which also keeps mirror writes in call order.
func (c *Collection[T, P]) saveMirrorLocked() {
	if err := c.mirror.Save(c.ctx, c.items); err != nil {
		c.log.Warn("mirror save failed", "error", err)
	}
}

// remoteWrite runs fn in the background. Failures are logged and
// surfaced through the snapshot error field; the optimistic in-memory
// change is never rolled back.
func (c *Collection[T, P]) remoteWrite(op string, fn func(ctx context.Context) error) {
	if c.source == nil {
		return
	}
	c.writes.Add(1)
	go func() {
		defer c.writes.Done()
		if err := fn(c.ctx); err != nil {
			c.log.Warn("remote write failed", "op", op, "error", err)
			c.mu.Lock()
			c.lastErr = "failed to sync " + c.name + " to the remote store"
			c.mu.Unlock()
		}
	}()
}
