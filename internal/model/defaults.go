// Copyright (c) 2025-2026 Wolv Events
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Built-in default content. The site data store starts from these so the
// first render is never blank, even with zero remote connectivity.
// Each function returns a fresh value; callers own the result.

// DefaultEvents returns the seeded demo events. Two of the three are
// featured so the featured listing is populated out of the box.
func DefaultEvents() []Event {
	return []Event{
		{
			ID:          "e1",
			Title:       "Midnight Gala 2025",
			Date:        "2025-10-31",
			Location:    "Noir Hall, NYC",
			Description: "An immersive black-tie experience with live performances and curated gastronomy.",
			ImageURL:    "/elegant-midnight-gala-with-crimson-lighting.png",
			Featured:    true,
		},
		{
			ID:          "e2",
			Title:       "Crimson Sound Festival",
			Date:        "2025-06-21",
			Location:    "Shoreline Arena",
			Description: "A high-energy music festival with bespoke stages and interactive art.",
			ImageURL:    "/crimson-themed-outdoor-music-festival-night-crowd.png",
			Featured:    true,
		},
		{
			ID:          "e3",
			Title:       "Executive Summit",
			Date:        "2025-11-12",
			Location:    "Glass Tower, SF",
			Description: "C-suite sessions, precision hospitality, and flawless production.",
			ImageURL:    "/premium-corporate-summit-with-black-stage-lighting.png",
			Featured:    false,
		},
	}
}

// DefaultGallery returns the seeded demo gallery photos.
func DefaultGallery() []GalleryPhoto {
	return []GalleryPhoto{
		{ID: "g1", URL: "/red-light-stage-with-dramatic-black-shadows.png", Alt: "Red light stage"},
		{ID: "g2", URL: "/black-tie-gala-dinner-with-crimson-accents.png", Alt: "Gala dinner"},
		{ID: "g3", URL: "/concert-crowd-under-red-spotlights.png", Alt: "Concert crowd"},
		{ID: "g4", URL: "/premium-corporate-event-stage-in-black-and-red.png", Alt: "Corporate event"},
		{ID: "g5", URL: "/crimson-stage-with-smoke-and-beams.png", Alt: "Crimson stage"},
	}
}

// DefaultAftermovies returns the default aftermovie collection, which is
// empty: recap videos only exist once an admin uploads one.
func DefaultAftermovies() []Aftermovie {
	return nil
}

// DefaultSettings returns the default site settings singleton.
func DefaultSettings() SiteSettings {
	return SiteSettings{
		ID:              SettingsID,
		SiteName:        "Wolv Events",
		SiteDescription: "Premium planning, production, and experiences — elevated in black and blood red.",
		PrimaryColor:    "#8b0000",
		ContactEmail:    "hello@wolv.events",
		ContactLocation: "New York, NY",
	}
}

// DefaultAbout returns the default about-page copy.
func DefaultAbout() AboutContent {
	return AboutContent{
		Heading: "We design moments that matter.",
		Content: "From intimate launches to arena-scale spectacles, our team crafts premium, " +
			"end-to-end event experiences. Strategy, design, production, and hospitality — " +
			"delivered flawlessly.",
	}
}
