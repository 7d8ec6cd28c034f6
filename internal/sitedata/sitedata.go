// Copyright (c) 2025-2026 Wolv Events
// SPDX-License-Identifier: GPL-3.0-or-later

// Package sitedata owns the canonical in-memory snapshot of site
// content. Each collection and singleton mediates between volatile
// memory, the durable local mirror, and the remote content store:
// reads are served from memory, mutations apply to memory first, the
// mirror is written synchronously, and remote writes are asynchronous
// fire-and-forget with no rollback on failure.
package sitedata

import "context"

// State is the lifecycle state of a content store.
type State int

const (
	// StateUninitialized is the state before Init; the snapshot holds
	// built-in defaults so the first render is never blank.
	StateUninitialized State = iota

	// StateLoading is the window between Init and the first remote
	// fetch resolving.
	StateLoading

	// StateReady means the snapshot is displayable. A non-empty error
	// can accompany it: stale-but-displayable, not fatal.
	StateReady
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Source is the remote row contract a collection depends on. A nil
// Source means the remote store is not configured; the collection then
// runs on defaults and the local mirror alone.
type Source[T any] interface {
	List(ctx context.Context) ([]T, error)
	Insert(ctx context.Context, row T) (T, error)
	Update(ctx context.Context, id string, patch any) error
	Delete(ctx context.Context, id string) error
}

// SingletonSource is the remote contract for single-row content.
type SingletonSource[T any] interface {
	Fetch(ctx context.Context) (T, bool, error)
	Upsert(ctx context.Context, row T) error
}

// Error represents an error type for site data operations.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrRemoteDisabled indicates a remote-dependent operation was invoked
// without remote store credentials configured.
const ErrRemoteDisabled Error = "remote content store is not configured"
