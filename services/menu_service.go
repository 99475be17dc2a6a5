package services

import (
	"github.com/TarunBali/menu-magic-mobile-dine/entity"
	"github.com/TarunBali/menu-magic-mobile-dine/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) List(category, q string) ([]entity.MenuItem, error) {
	return s.Repo.List(category, q)
}

func (s *MenuService) Categories() ([]entity.MenuCategory, error) {
	return s.Repo.Categories()
}
