package services

import (
	"errors"

	"github.com/TarunBali/menu-magic-mobile-dine/entity"
	"github.com/TarunBali/menu-magic-mobile-dine/repository"

	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	menuRepo *repository.MenuRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, MenuRepo: menuRepo}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	ItemID   uint `json:"itemId" binding:"required"`
	Quantity int  `json:"quantity" binding:"min=1"`
}

type CreateOrderReq struct {
	CustomerName        string               `json:"customerName" binding:"required"`
	Items               []OrderItemIn        `json:"items"`
	TotalAmount         int64                `json:"totalAmount"`
	PaymentMethod       entity.PaymentMethod `json:"paymentMethod" binding:"required,oneof=CASH UPI CARD"`
	TableNumber         string               `json:"tableNumber"`
	SpecialInstructions string               `json:"specialInstructions"`
}

type CreateOrderRes struct {
	ID    string `json:"id"`
	Total int64  `json:"total"`
}

// Create builds a PENDING order from explicit line items, or from the cart
// behind cartToken when no items are given. Item names and unit prices are
// snapshotted from the catalog; the cart is cleared in the same transaction.
func (s *OrderService) Create(phone, cartToken string, req *CreateOrderReq) (*CreateOrderRes, error) {
	rows, subtotal, err := s.buildLines(cartToken, req.Items)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("items is required")
	}

	total := req.TotalAmount
	if total == 0 {
		total = subtotal
	}

	var out CreateOrderRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			CustomerName:        req.CustomerName,
			CustomerPhone:       phone,
			TotalAmount:         total,
			PaymentMethod:       req.PaymentMethod,
			Status:              entity.OrderPending,
			TableNumber:         req.TableNumber,
			SpecialInstructions: req.SpecialInstructions,
			Items:               rows,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		// เคลียร์ cart
		if cartToken != "" {
			if err := s.CartRepo.ClearCart(tx, cartToken); err != nil {
				return err
			}
		}

		out = CreateOrderRes{ID: order.ID, Total: order.TotalAmount}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// buildLines snapshots either the explicit items or the cart contents.
func (s *OrderService) buildLines(cartToken string, items []OrderItemIn) ([]entity.OrderItem, int64, error) {
	if len(items) == 0 && cartToken != "" {
		cart, err := s.CartRepo.GetCartWithItems(cartToken)
		if err != nil {
			return nil, 0, err
		}
		for _, it := range cart.Items {
			items = append(items, OrderItemIn{ItemID: it.MenuItemID, Quantity: it.Qty})
		}
	}

	var subtotal int64
	rows := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		m, err := s.MenuRepo.GetByID(it.ItemID)
		if err != nil {
			return nil, 0, errors.New("menu item not found")
		}
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		line := m.Price * int64(qty)
		subtotal += line
		rows = append(rows, entity.OrderItem{
			MenuItemID: m.ID,
			Name:       m.Name,
			UnitPrice:  m.Price,
			Qty:        qty,
			Total:      line,
		})
	}
	return rows, subtotal, nil
}

// ----- List & Detail -----

func (s *OrderService) ListForCustomer(phone string) ([]entity.Order, error) {
	return s.Repo.ListForCustomer(phone)
}

func (s *OrderService) GetByID(orderID string) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

func (s *OrderService) ListAll(status entity.OrderStatus) ([]entity.Order, error) {
	return s.Repo.ListAll(status)
}

// ----- Dashboard -----

type DashboardOut struct {
	TotalOrders    int64                        `json:"totalOrders"`
	TotalRevenue   int64                        `json:"totalRevenue"`
	OrdersByStatus map[entity.OrderStatus]int64 `json:"ordersByStatus"`
}

func (s *OrderService) Dashboard() (*DashboardOut, error) {
	count, revenue, err := s.Repo.Totals()
	if err != nil {
		return nil, err
	}
	rows, err := s.Repo.CountByStatus()
	if err != nil {
		return nil, err
	}

	byStatus := map[entity.OrderStatus]int64{
		entity.OrderPending:   0,
		entity.OrderConfirmed: 0,
		entity.OrderPreparing: 0,
		entity.OrderReady:     0,
		entity.OrderCompleted: 0,
		entity.OrderCancelled: 0,
	}
	for _, r := range rows {
		byStatus[r.Status] = r.Count
	}

	return &DashboardOut{
		TotalOrders:    count,
		TotalRevenue:   revenue,
		OrdersByStatus: byStatus,
	}, nil
}
