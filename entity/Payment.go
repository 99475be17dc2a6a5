package entity

import (
	"gorm.io/gorm"
)

type Payment struct {
	gorm.Model
	OrderID string `gorm:"index" json:"orderId"`
	Order   Order  `json:"-"` // preload only on payment detail

	Amount        int64         `json:"amount"`
	Method        PaymentMethod `json:"method"`
	TransactionID string        `json:"transactionId"`
	Status        string        `json:"status"`
}
