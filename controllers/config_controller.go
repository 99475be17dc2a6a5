package controllers

import (
	"errors"
	"io"

	"github.com/TarunBali/menu-magic-mobile-dine/pkg/resp"
	"github.com/TarunBali/menu-magic-mobile-dine/services"

	"github.com/gin-gonic/gin"
)

type ConfigController struct{ Svc *services.ConfigService }

func NewConfigController(s *services.ConfigService) *ConfigController {
	return &ConfigController{Svc: s}
}

// GET /config
func (h *ConfigController) Get(c *gin.Context) {
	cfg, err := h.Svc.Get()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cfg)
}

// PUT /config — body is the raw JSON configuration file
func (h *ConfigController) Load(c *gin.Context) {
	content, err := io.ReadAll(c.Request.Body)
	if err != nil {
		resp.BadRequest(c, "cannot read body")
		return
	}

	cfg, err := h.Svc.LoadFromFile(content)
	if err != nil {
		if errors.Is(err, services.ErrBadConfig) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cfg)
}

// POST /config/reset
func (h *ConfigController) Reset(c *gin.Context) {
	cfg, err := h.Svc.ResetToDemo()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cfg)
}
