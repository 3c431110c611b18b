package model

import "time"

// CVInfo records the currently published CV document.
type CVInfo struct {
	Filename     string     `json:"filename,omitempty"`
	OriginalName string     `json:"originalName,omitempty"`
	UploadedAt   *time.Time `json:"uploadedAt"`
}

// Content is the editable page content document. Hero, about and services are
// free-form blocks owned by the frontend; the backend only stores and serves
// them.
type Content struct {
	Hero      map[string]interface{} `json:"hero"`
	About     map[string]interface{} `json:"about"`
	Services  map[string]interface{} `json:"services"`
	CV        CVInfo                 `json:"cv"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// ContentUpdate is a partial update; nil blocks are left unchanged. The CV
// block is only writable through the CV upload endpoint.
type ContentUpdate struct {
	Hero     map[string]interface{} `json:"hero"`
	About    map[string]interface{} `json:"about"`
	Services map[string]interface{} `json:"services"`
}

// Apply merges non-nil blocks into the content document.
func (u ContentUpdate) Apply(c *Content) {
	if u.Hero != nil {
		c.Hero = u.Hero
	}
	if u.About != nil {
		c.About = u.About
	}
	if u.Services != nil {
		c.Services = u.Services
	}
}

// DefaultContent seeds the content collection on first use.
func DefaultContent() Content {
	return Content{
		Hero: map[string]interface{}{
			"title":       "Creative Graphics Designer",
			"subtitle":    "Bringing ideas to life through innovative digital design",
			"description": "Welcome to my portfolio. I specialize in creating stunning visual experiences that communicate your brand's story effectively.",
		},
		About: map[string]interface{}{
			"title":   "About Me",
			"content": "I am a passionate graphics designer with years of experience in creating compelling visual content. My expertise spans across branding, digital media, and creative design solutions.",
			"skills":  []interface{}{"Brand Design", "Digital Media", "UI/UX Design", "Print Design"},
		},
		Services: map[string]interface{}{
			"title": "Services & Pricing",
			"items": []interface{}{},
		},
		CV: CVInfo{},
	}
}
