package model

import "time"

// Aftermovie represents a recap video of a past event. The Event field
// is a free-text label, not a foreign key into the events collection.
type Aftermovie struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Event       string    `json:"event,omitempty"`
	VideoURL    string    `json:"video_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AftermoviePatch is a partial update for an Aftermovie.
type AftermoviePatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Event       *string `json:"event,omitempty"`
	VideoURL    *string `json:"video_url,omitempty"`
}

// EntityID returns the aftermovie id.
func (a Aftermovie) EntityID() string { return a.ID }

// WithMeta returns a copy with the given id and creation timestamps set.
func (a Aftermovie) WithMeta(id string, now time.Time) Aftermovie {
	a.ID = id
	a.CreatedAt = now
	a.UpdatedAt = now
	return a
}

// Merge applies the non-nil patch fields and bumps the updated timestamp.
func (a Aftermovie) Merge(p AftermoviePatch, now time.Time) Aftermovie {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Event != nil {
		a.Event = *p.Event
	}
	if p.VideoURL != nil {
		a.VideoURL = *p.VideoURL
	}
	a.UpdatedAt = now
	return a
}
