package entity

import (
	"gorm.io/gorm"
)

// Customer is created on first successful OTP verification and keyed by
// phone. Orders reference the phone, not this row: guests can order before
// the profile exists.
type Customer struct {
	gorm.Model
	Phone string `gorm:"uniqueIndex;not null" json:"phone"`
	Name  string `json:"name,omitempty"`
}
