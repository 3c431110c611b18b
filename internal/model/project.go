package model

import "time"

// MediaFile describes an uploaded asset attached to a project. Filename points
// into the non-public secure directory; ThumbnailPath is the web path of the
// watermarked preview.
type MediaFile struct {
	OriginalName  string    `json:"originalName"`
	Filename      string    `json:"filename"`
	MimeType      string    `json:"mimeType"`
	Size          int64     `json:"size"`
	UploadedAt    time.Time `json:"uploadedAt"`
	ThumbnailPath string    `json:"thumbnailPath,omitempty"`
}

// Project is a portfolio entry.
type Project struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Category      string      `json:"category"`
	Tags          []string    `json:"tags"`
	Featured      bool        `json:"featured"`
	Media         []MediaFile `json:"media"`
	ProjectURL    string      `json:"projectUrl,omitempty"`
	ThumbnailPath string      `json:"thumbnailPath,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// ProjectUpdate is a partial update; nil fields are left unchanged.
type ProjectUpdate struct {
	Title         *string      `json:"title"`
	Description   *string      `json:"description"`
	Category      *string      `json:"category"`
	Tags          *[]string    `json:"tags"`
	Featured      *bool        `json:"featured"`
	Media         *[]MediaFile `json:"media"`
	ProjectURL    *string      `json:"projectUrl"`
	ThumbnailPath *string      `json:"thumbnailPath"`
}

// Apply merges non-nil fields into the project.
func (u ProjectUpdate) Apply(p *Project) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Tags != nil {
		p.Tags = *u.Tags
	}
	if u.Featured != nil {
		p.Featured = *u.Featured
	}
	if u.Media != nil {
		p.Media = *u.Media
	}
	if u.ProjectURL != nil {
		p.ProjectURL = *u.ProjectURL
	}
	if u.ThumbnailPath != nil {
		p.ThumbnailPath = *u.ThumbnailPath
	}
}

// PublicProject is the listing shape served to anonymous visitors.
type PublicProject struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	ThumbnailPath string    `json:"thumbnailPath,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	Featured      bool      `json:"featured"`
}

// PublicMedia exposes only the watermarked preview of an asset, never the
// original file path.
type PublicMedia struct {
	URL           string    `json:"url"`
	MimeType      string    `json:"mimeType"`
	UploadedAt    time.Time `json:"uploadedAt"`
	IsWatermarked bool      `json:"isWatermarked"`
}

// PublicProjectDetail is a single project as served to anonymous visitors.
type PublicProjectDetail struct {
	PublicProject
	ProjectURL string        `json:"projectUrl,omitempty"`
	Media      []PublicMedia `json:"media"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// Public returns the listing shape of the project.
func (p *Project) Public() PublicProject {
	return PublicProject{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Category:      p.Category,
		Tags:          p.Tags,
		ThumbnailPath: p.ThumbnailPath,
		CreatedAt:     p.CreatedAt,
		Featured:      p.Featured,
	}
}

// PublicDetail returns the detail shape with media reduced to previews.
func (p *Project) PublicDetail() PublicProjectDetail {
	media := make([]PublicMedia, 0, len(p.Media))
	for _, m := range p.Media {
		media = append(media, PublicMedia{
			URL:           m.ThumbnailPath,
			MimeType:      m.MimeType,
			UploadedAt:    m.UploadedAt,
			IsWatermarked: true,
		})
	}
	return PublicProjectDetail{
		PublicProject: p.Public(),
		ProjectURL:    p.ProjectURL,
		Media:         media,
		UpdatedAt:     p.UpdatedAt,
	}
}
