package models

import "time"

type Testimonial struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Author string `gorm:"size:100;not null" json:"author"`
	Role   string `gorm:"size:100" json:"role"`
	Quote  string `gorm:"size:500;not null" json:"quote"`
	Rating int    `gorm:"default:5" json:"rating"`

	Featured bool `gorm:"default:false" json:"featured"`
	Active   bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
