package services

import (
	"errors"
	"testing"
	"time"

	"github.com/TarunBali/menu-magic-mobile-dine/entity"
	"github.com/TarunBali/menu-magic-mobile-dine/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour, "123456")
}

func seedStaff(t *testing.T, db *gorm.DB, username, password string) {
	t.Helper()
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err := db.Create(&entity.Staff{Username: username, Password: string(hash), Role: "admin"}).Error; err != nil {
		t.Fatalf("seed staff: %v", err)
	}
}

func TestOTPSingleUse(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	if err := svc.RequestOTP("9999999999"); err != nil {
		t.Fatalf("request otp: %v", err)
	}

	token, customer, err := svc.VerifyOTP("9999999999", "123456")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if token == "" {
		t.Error("expected a token on successful verify")
	}
	if customer.Phone != "9999999999" {
		t.Errorf("customer phone = %s", customer.Phone)
	}

	// the code is cleared on success, a replay must fail
	if _, _, err := svc.VerifyOTP("9999999999", "123456"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("replay: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestVerifyWrongOTP(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	svc.RequestOTP("9999999999")

	if _, _, err := svc.VerifyOTP("9999999999", "000000"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong code: err = %v, want ErrInvalidCredentials", err)
	}

	// failed attempt leaves the code in place
	if _, _, err := svc.VerifyOTP("9999999999", "123456"); err != nil {
		t.Errorf("correct code after failed attempt: %v", err)
	}
}

func TestVerifyWithoutRequest(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	if _, _, err := svc.VerifyOTP("1111111111", "123456"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestStaffLogin(t *testing.T) {
	db := newTestDB(t)
	seedStaff(t, db, "admin", "admin123")
	svc := newAuthService(db)

	token, staff, err := svc.StaffLogin("admin", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || staff.Role != "admin" {
		t.Errorf("token=%q role=%q", token, staff.Role)
	}

	if _, _, err := svc.StaffLogin("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v", err)
	}
	if _, _, err := svc.StaffLogin("nobody", "admin123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: err = %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	svc.RequestOTP("2222222222")
	if _, _, err := svc.VerifyOTP("2222222222", "123456"); err != nil {
		t.Fatalf("verify: %v", err)
	}

	customer, err := svc.UpdateProfile("2222222222", "Tarun")
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if customer.Name != "Tarun" {
		t.Errorf("name = %q, want Tarun", customer.Name)
	}
}
