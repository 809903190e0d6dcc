package models

// SEOSetting holds the meta tags for one logical page of the public site.
// PageName is the collection key ("home", "about", "contact", ...).
type SEOSetting struct {
	PageName    string `json:"page_name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`

	// OGImage and TwitterImage are absolute URLs for the social share cards.
	OGImage      string `json:"og_image"`
	TwitterImage string `json:"twitter_image"`

	CanonicalURL string `json:"canonical_url"`
}

// SEOSettings is the shape of GET /seo: page name to its setting record.
type SEOSettings map[string]SEOSetting

// TableName returns the name of the database table
// associated with the SEOSetting model.
func (s SEOSetting) TableName() string {
	return "seo_settings"
}
