package controllers

import (
	"github.com/TarunBali/menu-magic-mobile-dine/pkg/resp"
	"github.com/TarunBali/menu-magic-mobile-dine/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct{ Svc *services.ReportService }

func NewReportController(s *services.ReportService) *ReportController {
	return &ReportController{Svc: s}
}

// POST /staff/reports/export
func (h *ReportController) Export(c *gin.Context) {
	var req struct {
		Date string `json:"date"` // YYYY-MM-DD, defaults to today
	}
	// body is optional
	_ = c.ShouldBindJSON(&req)

	out, err := h.Svc.ExportDay(req.Date)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
