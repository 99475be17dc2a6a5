package repository

import (
	"errors"

	"github.com/TarunBali/menu-magic-mobile-dine/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// คืน Cart ของ token (ถ้าไม่มีก็คืน Cart ว่าง ๆ โดยไม่ error เพื่อให้ FE แสดงได้)
func (r *CartRepository) GetCartWithItems(token string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("token = ?", token).
		Preload("Items").
		Preload("Items.MenuItem").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{Token: token}, nil
	}
	return &c, err
}

func (r *CartRepository) GetOrCreateCart(token string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("token = ?", token).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{Token: token}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// UpsertItem bumps the quantity when the menu item is already in the cart,
// keeping the one-row-per-item invariant.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID, menuItemID uint, delta int) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).First(&exist).Error
	if err == nil {
		exist.Qty += delta
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(&entity.CartItem{CartID: cartID, MenuItemID: menuItemID, Qty: delta}).Error
}

// UpdateQty sets the quantity exactly; qty <= 0 removes the line instead.
func (r *CartRepository) UpdateQty(tx *gorm.DB, token string, menuItemID uint, qty int) error {
	if qty <= 0 {
		return r.RemoveItem(tx, token, menuItemID)
	}
	return tx.Exec(`
		UPDATE cart_items
		   SET qty = ?
		 WHERE menu_item_id = ?
		   AND cart_id IN (SELECT id FROM carts WHERE token = ?)
	`, qty, menuItemID, token).Error
}

// RemoveItem deletes the line if present; absent lines are not an error.
func (r *CartRepository) RemoveItem(tx *gorm.DB, token string, menuItemID uint) error {
	return tx.
		Where("menu_item_id = ? AND cart_id IN (SELECT id FROM carts WHERE token = ?)", menuItemID, token).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, token string) error {
	var c entity.Cart
	if err := tx.Where("token = ?", token).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error
}
