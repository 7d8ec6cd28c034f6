// Copyright (c) 2025-2026 Wolv Events
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wolvhq/wolv-site/internal/model"
	"github.com/wolvhq/wolv-site/internal/sitedata"
)

func snapshotMeta[T any](snap sitedata.Snapshot[T]) *Meta {
	return &Meta{
		State: snap.State.String(),
		Error: snap.Err,
		Total: len(snap.Items),
	}
}

// ListEvents returns every event in the snapshot, newest first.
func (h *Handler) ListEvents(w http.ResponseWriter, _ *http.Request) {
	snap := h.store.Events.Query()
	WriteSuccess(w, snap.Items, snapshotMeta(snap))
}

// FeaturedEvents returns only the events flagged for the front page.
func (h *Handler) FeaturedEvents(w http.ResponseWriter, _ *http.Request) {
	snap := h.store.Events.Query()
	featured := make([]model.Event, 0, len(snap.Items))
	for _, ev := range snap.Items {
		if ev.Featured {
			featured = append(featured, ev)
		}
	}
	WriteSuccess(w, featured, &Meta{
		State: snap.State.String(),
		Error: snap.Err,
		Total: len(featured),
	})
}

// GetEvent returns a single event by id.
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	event, ok := h.store.Events.Get(id)
	if !ok {
		WriteNotFound(w, "Event not found")
		return
	}
	WriteSuccess(w, event, nil)
}

// ListGallery returns the gallery photos.
func (h *Handler) ListGallery(w http.ResponseWriter, _ *http.Request) {
	snap := h.store.Gallery.Query()
	WriteSuccess(w, snap.Items, snapshotMeta(snap))
}

// ListAftermovies returns the aftermovie videos, newest first.
func (h *Handler) ListAftermovies(w http.ResponseWriter, _ *http.Request) {
	snap := h.store.Aftermovies.Query()
	WriteSuccess(w, snap.Items, snapshotMeta(snap))
}

// GetSettings returns the site settings singleton.
func (h *Handler) GetSettings(w http.ResponseWriter, _ *http.Request) {
	val := h.store.Settings.Query()
	WriteSuccess(w, val.Value, &Meta{State: val.State.String(), Error: val.Err})
}

// aboutResponse is the about payload; HTML is filled only when the
// client asks for rendered markdown.
type aboutResponse struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
	HTML    string `json:"html,omitempty"`
}

// GetAbout returns the about-page copy. With ?format=html the markdown
// body is also rendered and sanitized.
func (h *Handler) GetAbout(w http.ResponseWriter, r *http.Request) {
	val := h.store.About.Query()
	resp := aboutResponse{
		Heading: val.Value.Heading,
		Content: val.Value.Content,
	}

	if r.URL.Query().Get("format") == "html" {
		var buf bytes.Buffer
		if err := h.markdown.Convert([]byte(val.Value.Content), &buf); err != nil {
			h.log.Warn("about markdown render failed", "error", err)
		} else {
			resp.HTML = h.sanitize.Sanitize(buf.String())
		}
	}

	WriteSuccess(w, resp, &Meta{State: val.State.String(), Error: val.Err})
}
