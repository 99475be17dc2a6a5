package services

import (
	"errors"
	"strings"
	"time"

	"github.com/TarunBali/menu-magic-mobile-dine/entity"
	"github.com/TarunBali/menu-magic-mobile-dine/repository"
	"github.com/TarunBali/menu-magic-mobile-dine/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService จัดการ business logic ของ OTP login และ staff login
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
	demoOTP   string
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration, demoOTP string) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
		demoOTP:   demoOTP,
	}
}

// RequestOTP issues the fixed demo code for the phone. Re-requesting
// overwrites any previous code.
func (s *AuthService) RequestOTP(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errors.New("phone is required")
	}
	return s.userRepo.SaveOTP(phone, s.demoOTP)
}

// VerifyOTP checks the code, establishes the customer identity and clears the
// code so it is single-use. A mismatch leaves everything untouched.
func (s *AuthService) VerifyOTP(phone, otp string) (string, *entity.Customer, error) {
	phone = strings.TrimSpace(phone)

	saved, err := s.userRepo.GetOTP(phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if saved != otp {
		return "", nil, ErrInvalidCredentials
	}

	customer, err := s.userRepo.GetOrCreateCustomer(phone)
	if err != nil {
		return "", nil, err
	}
	if err := s.userRepo.DeleteOTP(phone); err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(customer.Phone, customer.Name, "customer", s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, customer, nil
}

// StaffLogin ตรวจสอบ staff + สร้าง JWT
func (s *AuthService) StaffLogin(username, password string) (string, *entity.Staff, error) {
	staff, err := s.userRepo.FindStaffByUsername(strings.TrimSpace(username))
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(staff.Username, staff.Username, staff.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, staff, nil
}

func (s *AuthService) GetProfile(phone string) (*entity.Customer, error) {
	return s.userRepo.FindCustomerByPhone(phone)
}

// UpdateProfile sets the customer's display name.
func (s *AuthService) UpdateProfile(phone, name string) (*entity.Customer, error) {
	if err := s.userRepo.UpdateCustomerName(phone, strings.TrimSpace(name)); err != nil {
		return nil, err
	}
	return s.userRepo.FindCustomerByPhone(phone)
}
