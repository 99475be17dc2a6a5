package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/TarunBali/menu-magic-mobile-dine/entity"
	"github.com/TarunBali/menu-magic-mobile-dine/repository"
)

func TestProcessPaymentAlwaysSucceeds(t *testing.T) {
	db := newTestDB(t)
	items := seedMenuItems(t, db, entity.MenuItem{Name: "Butter Chicken", Price: 340, Category: "mains"})
	orderSvc := newOrderService(db)
	paySvc := NewPaymentService(db, repository.NewOrderRepository(db), 0)

	out, _ := orderSvc.Create("9999999999", "", &CreateOrderReq{
		CustomerName:  "Tarun",
		Items:         []OrderItemIn{{ItemID: items[0].ID, Quantity: 1}},
		PaymentMethod: entity.PayUPI,
	})

	res, err := paySvc.Process(out.ID, out.Total, entity.PayUPI)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if !res.Success {
		t.Error("payment stub must always succeed")
	}
	if !strings.HasPrefix(res.TransactionID, "TXN_") || len(res.TransactionID) != len("TXN_")+8 {
		t.Errorf("transactionId = %q", res.TransactionID)
	}
	if res.TransactionID != strings.ToUpper(res.TransactionID) {
		t.Errorf("transactionId not uppercased: %q", res.TransactionID)
	}

	var count int64
	db.Model(&entity.Payment{}).Where("order_id = ?", out.ID).Count(&count)
	if count != 1 {
		t.Errorf("payments recorded = %d, want 1", count)
	}
}

func TestProcessPaymentUnknownOrder(t *testing.T) {
	db := newTestDB(t)
	paySvc := NewPaymentService(db, repository.NewOrderRepository(db), 0)

	if _, err := paySvc.Process("no-such-order", 100, entity.PayCash); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}
}
