package entity

import (
	"gorm.io/gorm"
)

type Staff struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"` // bcrypt hash
	Role     string `gorm:"not null;default:admin" json:"role"`
}
