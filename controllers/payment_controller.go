package controllers

import (
	"errors"

	"github.com/TarunBali/menu-magic-mobile-dine/entity"
	"github.com/TarunBali/menu-magic-mobile-dine/pkg/resp"
	"github.com/TarunBali/menu-magic-mobile-dine/services"

	"github.com/gin-gonic/gin"
)

type PaymentController struct{ Svc *services.PaymentService }

func NewPaymentController(s *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: s}
}

type ProcessPaymentRequest struct {
	OrderID string               `json:"orderId" binding:"required"`
	Amount  int64                `json:"amount" binding:"required"`
	Method  entity.PaymentMethod `json:"method" binding:"required,oneof=CASH UPI CARD"`
}

// POST /payments
func (h *PaymentController) Process(c *gin.Context) {
	var req ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.Process(req.OrderID, req.Amount, req.Method)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
