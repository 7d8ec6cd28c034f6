// Copyright (c) 2025-2026 Wolv Events
// SPDX-License-Identifier: GPL-3.0-or-later

package mirror

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T, path string) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteSaveLoadRoundTrip(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "mirror.db"))
	ctx := context.Background()

	payload := []byte(`[{"id":"e1","title":"Night"}]`)
	if err := store.Save(ctx, KeyEvents, payload); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load(ctx, KeyEvents)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("Load() = %q, want %q", got, payload)
	}
}

func TestSQLiteSaveReplacesValue(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "mirror.db"))
	ctx := context.Background()

	_ = store.Save(ctx, KeySettings, []byte("one"))
	if err := store.Save(ctx, KeySettings, []byte("two")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load(ctx, KeySettings)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(got) != "two" {
		t.Errorf("Load() = %q, want %q", got, "two")
	}
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mirror.db")
	ctx := context.Background()

	first, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	if err := first.Save(ctx, KeyGallery, []byte("durable")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	second := openTestStore(t, path)
	got, err := second.Load(ctx, KeyGallery)
	if err != nil {
		t.Fatalf("Load() after reopen error = %v", err)
	}
	if string(got) != "durable" {
		t.Errorf("Load() = %q, want %q", got, "durable")
	}
}

func TestSQLiteLoadMiss(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "mirror.db"))

	_, err := store.Load(context.Background(), "never-saved")
	if !errors.Is(err, ErrMiss) {
		t.Errorf("Load() error = %v, want ErrMiss", err)
	}
}

func TestSQLiteDeleteAbsentKey(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "mirror.db"))

	if err := store.Delete(context.Background(), "absent"); err != nil {
		t.Errorf("Delete() error = %v, want nil", err)
	}
}

func TestSQLiteClosedStore(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "mirror.db"))
	_ = store.Close()

	ctx := context.Background()
	if _, err := store.Load(ctx, KeyEvents); !errors.Is(err, ErrClosed) {
		t.Errorf("Load() error = %v, want ErrClosed", err)
	}
	if err := store.Save(ctx, KeyEvents, []byte("x")); !errors.Is(err, ErrClosed) {
		t.Errorf("Save() error = %v, want ErrClosed", err)
	}
	// Closing twice must not error.
	if err := store.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
