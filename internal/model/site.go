package model

// PublicSiteSettings is the subset of settings exposed to anonymous visitors.
type PublicSiteSettings struct {
	Theme           map[string]interface{} `json:"theme"`
	SiteTitle       string                 `json:"siteTitle"`
	SiteDescription string                 `json:"siteDescription"`
}

// PublicSiteContent is the subset of content exposed to anonymous visitors.
// The CV block stays private; it is only reachable through signed URLs.
type PublicSiteContent struct {
	Hero     map[string]interface{} `json:"hero"`
	About    map[string]interface{} `json:"about"`
	Services map[string]interface{} `json:"services"`
}

// PublicSite is the combined public view driving the frontend.
type PublicSite struct {
	Settings PublicSiteSettings `json:"settings"`
	Content  PublicSiteContent  `json:"content"`
}
