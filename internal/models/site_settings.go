package models

import "time"

// Single-row table; seeded at migration time.
type SiteSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SiteName     string `gorm:"size:100" json:"site_name"`
	Tagline      string `gorm:"size:255" json:"tagline"`
	ContactEmail string `gorm:"size:100" json:"contact_email"`
	ContactPhone string `gorm:"size:20" json:"contact_phone"`
	Address      string `gorm:"size:255" json:"address"`
	InstagramURL string `gorm:"size:255" json:"instagram_url"`
	FacebookURL  string `gorm:"size:255" json:"facebook_url"`

	UpdatedAt time.Time `json:"updated_at"`
}
