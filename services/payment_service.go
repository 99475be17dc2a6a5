package services

import (
	"strings"
	"time"

	"github.com/TarunBali/menu-magic-mobile-dine/entity"
	"github.com/TarunBali/menu-magic-mobile-dine/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentService is a stub gateway: every payment succeeds after a fixed
// simulated delay. There is no failure path.
type PaymentService struct {
	DB        *gorm.DB
	OrderRepo *repository.OrderRepository
	Delay     time.Duration
}

func NewPaymentService(db *gorm.DB, repo *repository.OrderRepository, delay time.Duration) *PaymentService {
	return &PaymentService{DB: db, OrderRepo: repo, Delay: delay}
}

type PaymentResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId"`
}

// Process records the transaction against the order and returns a reference
// like TXN_1A2B3C4D.
func (s *PaymentService) Process(orderID string, amount int64, method entity.PaymentMethod) (*PaymentResult, error) {
	if _, err := s.OrderRepo.GetOrder(orderID); err != nil {
		return nil, ErrOrderNotFound
	}

	time.Sleep(s.Delay)

	txnID := "TXN_" + strings.ToUpper(uuid.NewString()[:8])
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.OrderRepo.CreatePayment(tx, &entity.Payment{
			OrderID:       orderID,
			Amount:        amount,
			Method:        method,
			TransactionID: txnID,
			Status:        "SUCCESS",
		})
	})
	if err != nil {
		return nil, err
	}
	return &PaymentResult{Success: true, TransactionID: txnID}, nil
}
