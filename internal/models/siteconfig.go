package models

import "time"

// SiteConfigID is the fixed document id of the singleton site configuration.
const SiteConfigID = "site"

type SocialLinks struct {
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	YouTube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
}

type SEOFields struct {
	Title       string   `bson:"title,omitempty" json:"title,omitempty"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Keywords    []string `bson:"keywords,omitempty" json:"keywords,omitempty"`
}

type ThemeColors struct {
	Primary   string `bson:"primary,omitempty" json:"primary,omitempty"`
	Secondary string `bson:"secondary,omitempty" json:"secondary,omitempty"`
	Accent    string `bson:"accent,omitempty" json:"accent,omitempty"`
}

// SiteConfig is the singleton site configuration document, upserted whole by
// the admin back-office and read through a TTL cache.
type SiteConfig struct {
	ID             string          `bson:"_id" json:"-"`
	SiteName       string          `bson:"siteName" json:"siteName"`
	LogoURL        string          `bson:"logoUrl,omitempty" json:"logoUrl,omitempty"`
	ContactEmail   string          `bson:"contactEmail,omitempty" json:"contactEmail,omitempty"`
	ContactPhone   string          `bson:"contactPhone,omitempty" json:"contactPhone,omitempty"`
	Social         SocialLinks     `bson:"social" json:"social"`
	SEO            SEOFields       `bson:"seo" json:"seo"`
	FeatureToggles map[string]bool `bson:"featureToggles,omitempty" json:"featureToggles,omitempty"`
	Theme          ThemeColors     `bson:"theme" json:"theme"`
	UpdatedAt      time.Time       `bson:"updatedAt" json:"updatedAt"`
}
