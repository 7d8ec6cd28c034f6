// Copyright (c) 2025-2026 Wolv Events
// SPDX-License-Identifier: GPL-3.0-or-later

package sitedata

import (
	"context"
	"errors"
	"log/slog"

	"github.com/wolvhq/wolv-site/internal/mirror"
	"github.com/wolvhq/wolv-site/internal/model"
	"github.com/wolvhq/wolv-site/internal/remote"
)

// Store bundles the per-domain content stores. It is constructed once
// at process start and passed by reference to consumers; there is no
// ambient global lookup.
type Store struct {
	Events      *Collection[model.Event, model.EventPatch]
	Gallery     *Collection[model.GalleryPhoto, model.GalleryPhotoPatch]
	Aftermovies *Collection[model.Aftermovie, model.AftermoviePatch]
	Settings    *Singleton[model.SiteSettings, model.SiteSettingsPatch]
	About       *Singleton[model.AboutContent, model.AboutContentPatch]
}

// New wires the content stores over a shared mirror and an optional
// remote client. A nil client runs everything on defaults plus mirror.
// About content has no remote table at all: it lives in the mirror
// only, matching the remote store schema.
func New(store mirror.Store, client *remote.Client, log *slog.Logger) *Store {
	var (
		events      Source[model.Event]
		gallery     Source[model.GalleryPhoto]
		aftermovies Source[model.Aftermovie]
		settings    SingletonSource[model.SiteSettings]
	)
	if client != nil {
		events = remote.NewRows[model.Event](client, remote.TableEvents, remote.OrderCreatedDesc)
		gallery = remote.NewRows[model.GalleryPhoto](client, remote.TableGallery, "")
		aftermovies = remote.NewRows[model.Aftermovie](client, remote.TableAftermovies, remote.OrderCreatedDesc)
		settings = remote.NewSingleton[model.SiteSettings](client, remote.TableSettings, model.SettingsID)
	}

	return &Store{
		Events: NewCollection[model.Event, model.EventPatch](
			"events", model.DefaultEvents(), store, mirror.KeyEvents, events, log),
		Gallery: NewCollection[model.GalleryPhoto, model.GalleryPhotoPatch](
			"gallery", model.DefaultGallery(), store, mirror.KeyGallery, gallery, log),
		Aftermovies: NewCollection[model.Aftermovie, model.AftermoviePatch](
			"aftermovies", model.DefaultAftermovies(), store, mirror.KeyAftermovies, aftermovies, log),
		Settings: NewSingleton[model.SiteSettings, model.SiteSettingsPatch](
			"settings", model.DefaultSettings(), store, mirror.KeySettings, settings, log),
		About: NewSingleton[model.AboutContent, model.AboutContentPatch](
			"about", model.DefaultAbout(), store, mirror.KeyAbout, nil, log),
	}
}

// Init initializes every store: mirror fast path synchronously, remote
// reconciliation in the background.
func (s *Store) Init(ctx context.Context) {
	s.Events.Init(ctx)
	s.Gallery.Init(ctx)
	s.Aftermovies.Init(ctx)
	s.Settings.Init(ctx)
	s.About.Init(ctx)
}

// RefreshAll forces a remote fetch on every remote-backed store.
func (s *Store) RefreshAll(ctx context.Context) error {
	errs := []error{
		s.Events.Refresh(ctx),
		s.Gallery.Refresh(ctx),
		s.Aftermovies.Refresh(ctx),
		s.Settings.Refresh(ctx),
	}
	for i, err := range errs {
		if errors.Is(err, ErrRemoteDisabled) {
			errs[i] = nil
		}
	}
	return errors.Join(errs...)
}

// Flush waits for all outstanding background remote writes.
func (s *Store) Flush() {
	s.Events.Flush()
	s.Gallery.Flush()
	s.Aftermovies.Flush()
	s.Settings.Flush()
	s.About.Flush()
}

// Close cancels in-flight remote work across all stores.
func (s *Store) Close() {
	s.Events.Close()
	s.Gallery.Close()
	s.Aftermovies.Close()
	s.Settings.Close()
	s.About.Close()
}
