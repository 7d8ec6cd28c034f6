package model

import "time"

// GalleryPhoto represents a photo in the public gallery. The url is
// required for the photo to render meaningfully but is not enforced
// non-empty at the type level.
type GalleryPhoto struct {
	ID  string `json:"id"`
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// GalleryPhotoPatch is a partial update for a GalleryPhoto.
type GalleryPhotoPatch struct {
	URL *string `json:"url,omitempty"`
	Alt *string `json:"alt,omitempty"`
}

// EntityID returns the photo id.
func (g GalleryPhoto) EntityID() string { return g.ID }

// WithMeta returns a copy with the given id set. Photos carry no timestamps.
func (g GalleryPhoto) WithMeta(id string, _ time.Time) GalleryPhoto {
	g.ID = id
	return g
}

// Merge applies the non-nil patch fields.
func (g GalleryPhoto) Merge(p GalleryPhotoPatch, _ time.Time) GalleryPhoto {
	if p.URL != nil {
		g.URL = *p.URL
	}
	if p.Alt != nil {
		g.Alt = *p.Alt
	}
	return g
}
