package entity

import (
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	Slug string `gorm:"uniqueIndex" json:"id"`
	Name string `json:"name"`
}
