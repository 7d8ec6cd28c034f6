// Copyright (c) 2025-2026 Wolv Events
// SPDX-License-Identifier: GPL-3.0-or-later

package sitedata

import (
	"context"
	"testing"

	"github.com/wolvhq/wolv-site/internal/mirror"
)

func TestStoreWithoutRemoteServesDefaults(t *testing.T) {
	store := New(mirror.NewMemoryStore(), nil, nil)
	t.Cleanup(store.Close)

	store.Init(context.Background())

	// With zero connectivity the site still renders: three demo events,
	// two of them featured, plus gallery and settings defaults.
	events := store.Events.Query()
	if events.State != StateReady {
		t.Errorf("events state = %v, want %v", events.State, StateReady)
	}
	if len(events.Items) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(events.Items))
	}
	featured := 0
	for _, ev := range events.Items {
		if ev.Featured {
			featured++
		}
	}
	if featured != 2 {
		t.Errorf("featured events = %d, want 2", featured)
	}

	if gallery := store.Gallery.Query(); len(gallery.Items) != 5 {
		t.Errorf("len(gallery) = %d, want 5", len(gallery.Items))
	}
	if movies := store.Aftermovies.Query(); len(movies.Items) != 0 {
		t.Errorf("len(aftermovies) = %d, want 0", len(movies.Items))
	}
	if settings := store.Settings.Query(); settings.Value.SiteName == "" {
		t.Error("settings site name is empty")
	}
	if about := store.About.Query(); about.Value.Heading == "" {
		t.Error("about heading is empty")
	}
}

func TestStoreRefreshAllWithoutRemote(t *testing.T) {
	store := New(mirror.NewMemoryStore(), nil, nil)
	t.Cleanup(store.Close)
	store.Init(context.Background())

	// A missing remote configuration is an expected state, not an error.
	if err := store.RefreshAll(context.Background()); err != nil {
		t.Errorf("RefreshAll() error = %v, want nil", err)
	}
}
