package controllers

import (
	"github.com/TarunBali/menu-magic-mobile-dine/pkg/resp"
	"github.com/TarunBali/menu-magic-mobile-dine/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /menu?category=&q=
func (h *MenuController) List(c *gin.Context) {
	items, err := h.Svc.List(c.Query("category"), c.Query("q"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu/categories
func (h *MenuController) Categories(c *gin.Context) {
	cats, err := h.Svc.Categories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}
