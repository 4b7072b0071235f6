package models

// SiteSettings is the singleton site configuration record. It has no id;
// exactly one instance exists at all times.
type SiteSettings struct {
	SiteName        string      `json:"siteName"`
	SiteDescription string      `json:"siteDescription"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	Address         string      `json:"address"`
	SocialLinks     SocialLinks `json:"socialLinks"`
}

// SocialLinks groups the site's social profile URLs.
type SocialLinks struct {
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedin"`
}
