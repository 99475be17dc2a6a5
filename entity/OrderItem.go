package entity

import (
	"gorm.io/gorm"
)

// OrderItem is a frozen copy of one cart line: name and unit price are taken
// from the catalog at checkout so later catalog edits cannot rewrite history.
type OrderItem struct {
	gorm.Model
	OrderID string `gorm:"index" json:"orderId"`

	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unitPrice"`
	Qty        int    `json:"qty"`
	Total      int64  `json:"total"`
}
