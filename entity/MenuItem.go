package entity

import (
	"gorm.io/gorm"
)

// MenuItem is a catalog entry. The catalog is seeded at startup and never
// mutated afterwards.
type MenuItem struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Category    string `gorm:"index" json:"category"`

	IsVegetarian bool `json:"isVegetarian"`
	IsSpicy      bool `json:"isSpicy"`
}
