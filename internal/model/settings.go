// Copyright (c) 2025-2026 Wolv Events
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// SettingsID is the fixed id of the single authoritative settings row.
// Writes to settings are upserts keyed by this id.
const SettingsID = "main"

// SiteSettings is the singleton record carrying branding and contact
// fields for the whole site.
type SiteSettings struct {
	ID              string    `json:"id"`
	SiteName        string    `json:"site_name"`
	SiteDescription string    `json:"site_description,omitempty"`
	LogoURL         string    `json:"logo_url,omitempty"`
	BannerURL       string    `json:"banner_url,omitempty"`
	PrimaryColor    string    `json:"primary_color,omitempty"`
	ContactEmail    string    `json:"contact_email,omitempty"`
	ContactPhone    string    `json:"contact_phone,omitempty"`
	ContactLocation string    `json:"contact_location,omitempty"`
	SocialFacebook  string    `json:"social_facebook,omitempty"`
	SocialTwitter   string    `json:"social_twitter,omitempty"`
	SocialInstagram string    `json:"social_instagram,omitempty"`
	SocialLinkedIn  string    `json:"social_linkedin,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SiteSettingsPatch is a partial update for SiteSettings.
type SiteSettingsPatch struct {
	SiteName        *string `json:"site_name,omitempty"`
	SiteDescription *string `json:"site_description,omitempty"`
	LogoURL         *string `json:"logo_url,omitempty"`
	BannerURL       *string `json:"banner_url,omitempty"`
	PrimaryColor    *string `json:"primary_color,omitempty"`
	ContactEmail    *string `json:"contact_email,omitempty"`
	ContactPhone    *string `json:"contact_phone,omitempty"`
	ContactLocation *string `json:"contact_location,omitempty"`
	SocialFacebook  *string `json:"social_facebook,omitempty"`
	SocialTwitter   *string `json:"social_twitter,omitempty"`
	SocialInstagram *string `json:"social_instagram,omitempty"`
	SocialLinkedIn  *string `json:"social_linkedin,omitempty"`
}

// Merge applies the non-nil patch fields and bumps the updated timestamp.
// The fixed id is preserved regardless of input.
func (s SiteSettings) Merge(p SiteSettingsPatch, now time.Time) SiteSettings {
	if p.SiteName != nil {
		s.SiteName = *p.SiteName
	}
	if p.SiteDescription != nil {
		s.SiteDescription = *p.SiteDescription
	}
	if p.LogoURL != nil {
		s.LogoURL = *p.LogoURL
	}
	if p.BannerURL != nil {
		s.BannerURL = *p.BannerURL
	}
	if p.PrimaryColor != nil {
		s.PrimaryColor = *p.PrimaryColor
	}
	if p.ContactEmail != nil {
		s.ContactEmail = *p.ContactEmail
	}
	if p.ContactPhone != nil {
		s.ContactPhone = *p.ContactPhone
	}
	if p.ContactLocation != nil {
		s.ContactLocation = *p.ContactLocation
	}
	if p.SocialFacebook != nil {
		s.SocialFacebook = *p.SocialFacebook
	}
	if p.SocialTwitter != nil {
		s.SocialTwitter = *p.SocialTwitter
	}
	if p.SocialInstagram != nil {
		s.SocialInstagram = *p.SocialInstagram
	}
	if p.SocialLinkedIn != nil {
		s.SocialLinkedIn = *p.SocialLinkedIn
	}
	s.ID = SettingsID
	s.UpdatedAt = now
	return s
}
