package repository

import (
	"github.com/TarunBali/menu-magic-mobile-dine/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// List filters the catalog by category slug and/or a free-text query over
// name and description. Empty filters return everything.
func (r *MenuRepository) List(category, q string) ([]entity.MenuItem, error) {
	db := r.DB.Model(&entity.MenuItem{})
	if category != "" {
		db = db.Where("category = ?", category)
	}
	if q != "" {
		like := "%" + q + "%"
		db = db.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	var items []entity.MenuItem
	err := db.Order("id").Find(&items).Error
	return items, err
}

func (r *MenuRepository) GetByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) GetByIDs(ids []uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *MenuRepository) Categories() ([]entity.MenuCategory, error) {
	var cats []entity.MenuCategory
	err := r.DB.Order("id").Find(&cats).Error
	return cats, err
}
