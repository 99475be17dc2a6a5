package controllers

import (
	"errors"

	"github.com/TarunBali/menu-magic-mobile-dine/entity"
	"github.com/TarunBali/menu-magic-mobile-dine/pkg/resp"
	"github.com/TarunBali/menu-magic-mobile-dine/services"

	"github.com/gin-gonic/gin"
)

// StaffOrderController is the kitchen console: every order, status moves,
// the dashboard numbers.
type StaffOrderController struct{ Svc *services.OrderService }

func NewStaffOrderController(s *services.OrderService) *StaffOrderController {
	return &StaffOrderController{Svc: s}
}

// GET /staff/orders?status=
func (h *StaffOrderController) List(c *gin.Context) {
	orders, err := h.Svc.ListAll(entity.OrderStatus(c.Query("status")))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// PATCH /staff/orders/:id/status
func (h *StaffOrderController) UpdateStatus(c *gin.Context) {
	var req struct {
		Status entity.OrderStatus `json:"status" binding:"required,oneof=PENDING CONFIRMED PREPARING READY COMPLETED CANCELLED"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.UpdateStatus(c.Param("id"), req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrInvalidTransition):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// GET /staff/dashboard
func (h *StaffOrderController) Dashboard(c *gin.Context) {
	out, err := h.Svc.Dashboard()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
