package model

import "time"

// AboutContent is the singleton about-page copy, keyed implicitly
// (no id column).
type AboutContent struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// AboutContentPatch is a partial update for AboutContent.
type AboutContentPatch struct {
	Heading *string `json:"heading,omitempty"`
	Content *string `json:"content,omitempty"`
}

// Merge applies the non-nil patch fields.
func (a AboutContent) Merge(p AboutContentPatch, _ time.Time) AboutContent {
	if p.Heading != nil {
		a.Heading = *p.Heading
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	return a
}
