// Copyright (c) 2025-2026 Wolv Events
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wolvhq/wolv-site/internal/model"
)

// CreateEvent adds a new event to the store.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var in model.Event
	if !decodeJSON(w, r, &in) {
		return
	}
	if in.Title == "" {
		WriteValidationError(w, map[string]string{"title": "Title is required"})
		return
	}
	in.Description = h.sanitize.Sanitize(in.Description)

	created := h.store.Events.Create(in)
	WriteCreated(w, created)
}

// UpdateEvent applies a partial update to an event.
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var patch model.EventPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if patch.Description != nil {
		clean := h.sanitize.Sanitize(*patch.Description)
		patch.Description = &clean
	}

	h.store.Events.Update(id, patch)
	if event, ok := h.store.Events.Get(id); ok {
		WriteSuccess(w, event, nil)
		return
	}
	WriteNotFound(w, "Event not found")
}

// DeleteEvent removes an event. Deleting an unknown id is a no-op.
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	h.store.Events.Delete(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// CreateGalleryPhoto adds a photo to the gallery.
func (h *Handler) CreateGalleryPhoto(w http.ResponseWriter, r *http.Request) {
	var in model.GalleryPhoto
	if !decodeJSON(w, r, &in) {
		return
	}
	if in.URL == "" {
		WriteValidationError(w, map[string]string{"url": "URL is required"})
		return
	}

	created := h.store.Gallery.Create(in)
	WriteCreated(w, created)
}

// UpdateGalleryPhoto applies a partial update to a gallery photo.
func (h *Handler) UpdateGalleryPhoto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var patch model.GalleryPhotoPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	h.store.Gallery.Update(id, patch)
	if photo, ok := h.store.Gallery.Get(id); ok {
		WriteSuccess(w, photo, nil)
		return
	}
	WriteNotFound(w, "Photo not found")
}

// DeleteGalleryPhoto removes a photo from the gallery.
func (h *Handler) DeleteGalleryPhoto(w http.ResponseWriter, r *http.Request) {
	h.store.Gallery.Delete(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// CreateAftermovie adds an aftermovie.
func (h *Handler) CreateAftermovie(w http.ResponseWriter, r *http.Request) {
	var in model.Aftermovie
	if !decodeJSON(w, r, &in) {
		return
	}
	fieldErrors := map[string]string{}
	if in.Title == "" {
		fieldErrors["title"] = "Title is required"
	}
	if in.VideoURL == "" {
		fieldErrors["video_url"] = "Video URL is required"
	}
	if len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}
	in.Description = h.sanitize.Sanitize(in.Description)

	created := h.store.Aftermovies.Create(in)
	WriteCreated(w, created)
}

// UpdateAftermovie applies a partial update to an aftermovie.
func (h *Handler) UpdateAftermovie(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var patch model.AftermoviePatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if patch.Description != nil {
		clean := h.sanitize.Sanitize(*patch.Description)
		patch.Description = &clean
	}

	h.store.Aftermovies.Update(id, patch)
	if movie, ok := h.store.Aftermovies.Get(id); ok {
		WriteSuccess(w, movie, nil)
		return
	}
	WriteNotFound(w, "Aftermovie not found")
}

// DeleteAftermovie removes an aftermovie.
func (h *Handler) DeleteAftermovie(w http.ResponseWriter, r *http.Request) {
	h.store.Aftermovies.Delete(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// UpdateSettings merges a partial update into the settings singleton.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch model.SiteSettingsPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	h.store.Settings.Update(patch)
	val := h.store.Settings.Query()
	WriteSuccess(w, val.Value, &Meta{State: val.State.String(), Error: val.Err})
}

// UpdateAbout merges a partial update into the about singleton.
func (h *Handler) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	var patch model.AboutContentPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if patch.Content != nil {
		clean := h.sanitize.Sanitize(*patch.Content)
		patch.Content = &clean
	}

	h.store.About.Update(patch)
	val := h.store.About.Query()
	WriteSuccess(w, val.Value, &Meta{State: val.State.String(), Error: val.Err})
}
