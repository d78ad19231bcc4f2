package models

import "time"

type Program struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`

	AgeMin   int     `json:"age_min"`
	AgeMax   int     `json:"age_max"`
	Schedule string  `gorm:"size:100" json:"schedule"`
	Price    float64 `json:"price"`

	Featured bool `gorm:"default:false" json:"featured"`
	Active   bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
