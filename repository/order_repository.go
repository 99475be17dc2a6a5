package repository

import (
	"github.com/TarunBali/menu-magic-mobile-dine/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders (CRUD หลัก) ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").Where("id = ?", orderID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ListForCustomer returns the customer's orders, newest first.
func (r *OrderRepository) ListForCustomer(phone string) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("customer_phone = ?", phone).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// ListAll returns every order, newest first, optionally filtered by status.
func (r *OrderRepository) ListAll(status entity.OrderStatus) ([]entity.Order, error) {
	db := r.DB.Preload("Items").Order("created_at DESC")
	if status != "" {
		db = db.Where("status = ?", status)
	}
	var out []entity.Order
	err := db.Find(&out).Error
	return out, err
}

// UpdateStatusFromTo flips status only when the order is still in `from`,
// so a stale writer loses instead of clobbering. UpdatedAt is refreshed by
// gorm on the same write.
func (r *OrderRepository) UpdateStatusFromTo(tx *gorm.DB, orderID string, from, to entity.OrderStatus) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ---------------- Dashboard / reports ----------------

type StatusCount struct {
	Status entity.OrderStatus `json:"status"`
	Count  int64              `json:"count"`
}

func (r *OrderRepository) CountByStatus() ([]StatusCount, error) {
	var rows []StatusCount
	err := r.DB.Model(&entity.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	return rows, err
}

func (r *OrderRepository) Totals() (int64, int64, error) {
	var count int64
	if err := r.DB.Model(&entity.Order{}).Count(&count).Error; err != nil {
		return 0, 0, err
	}
	var revenue struct{ Revenue int64 }
	if err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS revenue").
		Scan(&revenue).Error; err != nil {
		return 0, 0, err
	}
	return count, revenue.Revenue, nil
}

// TotalsForDay aggregates orders created on the given date (YYYY-MM-DD).
func (r *OrderRepository) TotalsForDay(date string) (int64, int64, error) {
	var row struct {
		Count   int64
		Revenue int64
	}
	err := r.DB.Model(&entity.Order{}).
		Select("COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS revenue").
		Where("DATE(created_at) = ?", date).
		Scan(&row).Error
	return row.Count, row.Revenue, err
}

// ---------------- Payments ----------------

func (r *OrderRepository) CreatePayment(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}
