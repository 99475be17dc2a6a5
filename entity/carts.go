package entity

import (
	"gorm.io/gorm"
)

// Cart belongs to one browser session, identified by an opaque token the
// client carries in X-Cart-Token. One cart per token.
type Cart struct {
	gorm.Model
	Token string `gorm:"uniqueIndex" json:"token"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
