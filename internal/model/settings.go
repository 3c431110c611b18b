package model

import "time"

// Settings is the site-wide configuration document.
type Settings struct {
	Theme           map[string]interface{} `json:"theme"`
	SiteTitle       string                 `json:"siteTitle"`
	SiteDescription string                 `json:"siteDescription"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

// SettingsUpdate is a partial update; nil fields are left unchanged.
type SettingsUpdate struct {
	Theme           map[string]interface{} `json:"theme"`
	SiteTitle       *string                `json:"siteTitle"`
	SiteDescription *string                `json:"siteDescription"`
}

// Apply merges non-nil fields into the settings document.
func (u SettingsUpdate) Apply(s *Settings) {
	if u.Theme != nil {
		s.Theme = u.Theme
	}
	if u.SiteTitle != nil {
		s.SiteTitle = *u.SiteTitle
	}
	if u.SiteDescription != nil {
		s.SiteDescription = *u.SiteDescription
	}
}

// DefaultSettings seeds the settings collection on first use.
func DefaultSettings() Settings {
	return Settings{
		Theme: map[string]interface{}{
			"primaryColor":        "#10b981",
			"secondaryColor":      "#8b5cf6",
			"backgroundPrimary":   "#0f172a",
			"backgroundSecondary": "#1e293b",
			"fontPrimary":         "Inter, sans-serif",
			"fontSecondary":       "Inter, sans-serif",
		},
		SiteTitle:       "Graphics Designer Portfolio",
		SiteDescription: "Professional graphics designer showcasing creative digital media work",
	}
}
