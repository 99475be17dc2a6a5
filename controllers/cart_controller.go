package controllers

import (
	"errors"
	"net/http"

	"github.com/TarunBali/menu-magic-mobile-dine/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// The cart is keyed by the X-Cart-Token header. The first add without a
// token creates a cart and returns the token in the same header.
const cartTokenHeader = "X-Cart-Token"

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	token := c.GetHeader(cartTokenHeader)

	view, err := h.Svc.Get(token)
	if err != nil { c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()}); return }
	c.JSON(http.StatusOK, gin.H{"cart": view})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var body struct {
		ItemID uint `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}); return
	}

	token, err := h.Svc.Add(c.GetHeader(cartTokenHeader), body.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header(cartTokenHeader, token)
	c.JSON(http.StatusCreated, gin.H{"ok": true, "token": token})
}

// PATCH /cart/items
func (h *CartController) UpdateQty(c *gin.Context) {
	var body struct {
		ItemID uint `json:"itemId" binding:"required"`
		Qty    int  `json:"qty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}); return
	}
	if err := h.Svc.UpdateQty(c.GetHeader(cartTokenHeader), body.ItemID, body.Qty); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()}); return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /cart/items
func (h *CartController) RemoveItem(c *gin.Context) {
	var body struct {
		ItemID uint `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}); return
	}
	if err := h.Svc.RemoveItem(c.GetHeader(cartTokenHeader), body.ItemID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()}); return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(c.GetHeader(cartTokenHeader)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()}); return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
