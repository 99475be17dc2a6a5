package repository

import (
	"errors"

	"github.com/TarunBali/menu-magic-mobile-dine/entity"

	"gorm.io/gorm"
)

type SettingsRepository struct{ DB *gorm.DB }

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// Get returns ("", false, nil) when the key has never been written.
func (r *SettingsRepository) Get(key string) (string, bool, error) {
	var row entity.Setting
	err := r.DB.Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return row.Value, true, nil
}

// Set writes the value wholesale, last write wins.
func (r *SettingsRepository) Set(key, value string) error {
	var row entity.Setting
	err := r.DB.Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(&entity.Setting{Key: key, Value: value}).Error
	}
	if err != nil {
		return err
	}
	row.Value = value
	return r.DB.Save(&row).Error
}

func (r *SettingsRepository) Delete(key string) error {
	return r.DB.Where("key = ?", key).Delete(&entity.Setting{}).Error
}
