package services

import (
	"github.com/TarunBali/menu-magic-mobile-dine/entity"
	"github.com/TarunBali/menu-magic-mobile-dine/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type CartView struct {
	Token      string            `json:"token"`
	Items      []entity.CartItem `json:"items"`
	TotalItems int               `json:"totalItems"`
	Subtotal   int64             `json:"subtotal"`
}

// Get recomputes totalItems and subtotal on every read; they are never cached.
func (s *CartService) Get(token string) (*CartView, error) {
	c, err := s.CartRepo.GetCartWithItems(token)
	if err != nil {
		return nil, err
	}
	view := &CartView{Token: token, Items: c.Items}
	for _, it := range c.Items {
		view.TotalItems += it.Qty
		view.Subtotal += it.MenuItem.Price * int64(it.Qty)
	}
	if view.Items == nil {
		view.Items = []entity.CartItem{}
	}
	return view, nil
}

// Add puts one more of the menu item into the cart. A missing token starts a
// fresh cart; the caller must hand the returned token back to the client.
func (s *CartService) Add(token string, menuItemID uint) (string, error) {
	if token == "" {
		token = uuid.NewString()
	}

	// ตรวจว่าเมนูมีจริง
	if _, err := s.MenuRepo.GetByID(menuItemID); err != nil {
		return "", err
	}

	c, err := s.CartRepo.GetOrCreateCart(token)
	if err != nil {
		return "", err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, menuItemID, 1)
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *CartService) UpdateQty(token string, menuItemID uint, qty int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, token, menuItemID, qty)
	})
}

func (s *CartService) RemoveItem(token string, menuItemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, token, menuItemID)
	})
}

func (s *CartService) Clear(token string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, token)
	})
}
