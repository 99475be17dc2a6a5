package entity

import (
	"gorm.io/gorm"
)

// OtpCode is the transient one-time code for a phone number. One row per
// phone; re-requesting overwrites, successful verification deletes.
type OtpCode struct {
	gorm.Model
	Phone string `gorm:"uniqueIndex;not null" json:"phone"`
	Code  string `json:"-"`
}
