package models

import "time"

type Coach struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name          string `gorm:"size:100;not null" json:"name"`
	Role          string `gorm:"size:100" json:"role"`
	Bio           string `gorm:"size:500" json:"bio"`
	Accreditation string `gorm:"size:100" json:"accreditation"`

	Featured bool `gorm:"default:false" json:"featured"`
	Active   bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
