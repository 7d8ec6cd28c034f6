// Copyright (c) 2025-2026 Wolv Events
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the site content entities served by the
// site data store and persisted in the remote content store.
package model

import "time"

// Event represents a single event shown on the public events pages.
// IDs are opaque strings generated client-side; Featured is a
// denormalized flag consumed by the featured-events listing.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date,omitempty"`
	Location    string    `json:"location,omitempty"`
	ImageURL    string    `json:"image_url"`
	Featured    bool      `json:"featured"`
	BookingURL  string    `json:"booking_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventPatch is a partial update for an Event. Nil fields are retained,
// non-nil fields overwrite. Typed patches catch field-name drift at
// compile time where an untyped map would not.
type EventPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
	Location    *string `json:"location,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Featured    *bool   `json:"featured,omitempty"`
	BookingURL  *string `json:"booking_url,omitempty"`
}

// EntityID returns the event id.
func (e Event) EntityID() string { return e.ID }

// WithMeta returns a copy with the given id and creation timestamps set.
func (e Event) WithMeta(id string, now time.Time) Event {
	e.ID = id
	e.CreatedAt = now
	e.UpdatedAt = now
	return e
}

// Merge applies the non-nil patch fields and bumps the updated timestamp.
func (e Event) Merge(p EventPatch, now time.Time) Event {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.ImageURL != nil {
		e.ImageURL = *p.ImageURL
	}
	if p.Featured != nil {
		e.Featured = *p.Featured
	}
	if p.BookingURL != nil {
		e.BookingURL = *p.BookingURL
	}
	e.UpdatedAt = now
	return e
}
