package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderPreparing OrderStatus = "PREPARING"
	OrderReady     OrderStatus = "READY"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

type PaymentMethod string

const (
	PayCash PaymentMethod = "CASH"
	PayUPI  PaymentMethod = "UPI"
	PayCard PaymentMethod = "CARD"
)

// Order snapshots the cart at checkout. Items and TotalAmount never change
// after creation; only Status and UpdatedAt do.
type Order struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	CustomerName  string `json:"customerName"`
	CustomerPhone string `gorm:"index" json:"customerPhone"`

	TotalAmount   int64         `json:"totalAmount"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Status        OrderStatus   `gorm:"index;default:PENDING" json:"status"`

	TableNumber         string `json:"tableNumber,omitempty"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`

	Payments []Payment `json:"-"` // preload only when payment detail is needed
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
