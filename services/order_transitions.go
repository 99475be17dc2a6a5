// services/order_transitions.go
package services

import (
	"errors"

	"github.com/TarunBali/menu-magic-mobile-dine/entity"

	"gorm.io/gorm"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// Orders move strictly forward, with cancellation allowed from any
// non-terminal state. COMPLETED and CANCELLED accept nothing further.
var transitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.OrderPending:   {entity.OrderConfirmed, entity.OrderCancelled},
	entity.OrderConfirmed: {entity.OrderPreparing, entity.OrderCancelled},
	entity.OrderPreparing: {entity.OrderReady, entity.OrderCancelled},
	entity.OrderReady:     {entity.OrderCompleted, entity.OrderCancelled},
	entity.OrderCompleted: {},
	entity.OrderCancelled: {},
}

func CanTransition(from, to entity.OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UpdateStatus validates the requested transition against the current state,
// then applies it with a compare-and-set so a concurrent writer cannot slip
// an illegal hop in between.
func (s *OrderService) UpdateStatus(orderID string, to entity.OrderStatus) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		if err != nil {
			return err
		}

		if !CanTransition(o.Status, to) {
			return ErrInvalidTransition
		}

		ok, err := s.Repo.UpdateStatusFromTo(tx, o.ID, o.Status, to)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidTransition
		}
		return nil
	})
}

// ----- Staff console shortcuts -----

func (s *OrderService) Confirm(orderID string) error {
	return s.UpdateStatus(orderID, entity.OrderConfirmed)
}
func (s *OrderService) StartPreparing(orderID string) error {
	return s.UpdateStatus(orderID, entity.OrderPreparing)
}
func (s *OrderService) MarkReady(orderID string) error {
	return s.UpdateStatus(orderID, entity.OrderReady)
}
func (s *OrderService) Complete(orderID string) error {
	return s.UpdateStatus(orderID, entity.OrderCompleted)
}
func (s *OrderService) Cancel(orderID string) error {
	return s.UpdateStatus(orderID, entity.OrderCancelled)
}
