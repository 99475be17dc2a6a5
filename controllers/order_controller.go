package controllers

import (
	"errors"

	"github.com/TarunBali/menu-magic-mobile-dine/pkg/resp"
	"github.com/TarunBali/menu-magic-mobile-dine/services"
	"github.com/TarunBali/menu-magic-mobile-dine/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /orders — checkout. Line items come from the request body or, when
// omitted, from the cart behind X-Cart-Token.
func (h *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.Create(utils.CurrentSubject(c), c.GetHeader(cartTokenHeader), &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, out)
}

// GET /orders — the customer's own orders, newest first
func (h *OrderController) ListForMe(c *gin.Context) {
	orders, err := h.Svc.ListForCustomer(utils.CurrentSubject(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	o, err := h.Svc.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, o)
}
