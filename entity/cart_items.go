package entity

import (
	"gorm.io/gorm"
)

// CartItem pairs a catalog item with a positive quantity. At most one row per
// (cart, menu item) — repeat adds bump Qty instead of inserting.
type CartItem struct {
	gorm.Model
	CartID uint `gorm:"index" json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `gorm:"index" json:"menuItemId"`
	MenuItem   MenuItem `json:"item"`

	Qty int `json:"quantity"`
}
