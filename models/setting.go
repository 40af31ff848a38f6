package models

import "time"

// Setting is one row of the site-wide key-value store. Homepage layout and
// the comments toggle live here as well as plain site settings.
type Setting struct {
	Key         string    `json:"setting_key" gorm:"column:setting_key;primaryKey"`
	Value       string    `json:"setting_value" gorm:"column:setting_value;type:text"`
	Type        string    `json:"setting_type" gorm:"column:setting_type"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "site_settings"
}

// PublicSettingKeys is the whitelist exposed to the public frontend.
var PublicSettingKeys = []string{
	"site_name",
	"site_tagline",
	"site_description",
	"site_logo_url",
	"site_favicon_url",
	"contact_email",
	"contact_phone",
	"facebook_url",
	"twitter_url",
	"instagram_url",
	"youtube_url",
	"footer_copyright",
}
