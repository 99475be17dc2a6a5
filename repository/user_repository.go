package repository

import (
	"errors"

	"github.com/TarunBali/menu-magic-mobile-dine/entity"

	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

// ---------------- Customers ----------------

func (r *UserRepository) FindCustomerByPhone(phone string) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.DB.Where("phone = ?", phone).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// GetOrCreateCustomer is called on successful OTP verification.
func (r *UserRepository) GetOrCreateCustomer(phone string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.DB.Where("phone = ?", phone).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Customer{Phone: phone}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

func (r *UserRepository) UpdateCustomerName(phone, name string) error {
	return r.DB.Model(&entity.Customer{}).Where("phone = ?", phone).Update("name", name).Error
}

// ---------------- OTP ----------------

// SaveOTP overwrites any previous code for the phone.
func (r *UserRepository) SaveOTP(phone, code string) error {
	var row entity.OtpCode
	err := r.DB.Where("phone = ?", phone).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(&entity.OtpCode{Phone: phone, Code: code}).Error
	}
	if err != nil {
		return err
	}
	row.Code = code
	return r.DB.Save(&row).Error
}

func (r *UserRepository) GetOTP(phone string) (string, error) {
	var row entity.OtpCode
	if err := r.DB.Where("phone = ?", phone).First(&row).Error; err != nil {
		return "", err
	}
	return row.Code, nil
}

// DeleteOTP makes the code single-use.
func (r *UserRepository) DeleteOTP(phone string) error {
	return r.DB.Unscoped().Where("phone = ?", phone).Delete(&entity.OtpCode{}).Error
}

// ---------------- Staff ----------------

func (r *UserRepository) FindStaffByUsername(username string) (*entity.Staff, error) {
	var s entity.Staff
	if err := r.DB.Where("username = ?", username).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
