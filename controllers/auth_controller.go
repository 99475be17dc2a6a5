package controllers

import (
	"errors"
	"net/http"

	"github.com/TarunBali/menu-magic-mobile-dine/pkg/resp"
	"github.com/TarunBali/menu-magic-mobile-dine/services"
	"github.com/TarunBali/menu-magic-mobile-dine/utils"

	"github.com/gin-gonic/gin"
)

type RequestOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
}
type VerifyOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}
type StaffLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/request-otp
func (a *AuthController) RequestOTP(c *gin.Context) {
	var req RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := a.Svc.RequestOTP(req.Phone); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"sent": true, "phone": req.Phone})
}

// POST /auth/verify-otp
func (a *AuthController) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, customer, err := a.Svc.VerifyOTP(req.Phone, req.OTP)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, "invalid otp")
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user":  gin.H{"phone": customer.Phone, "name": customer.Name},
	})
}

// POST /auth/staff/login
func (a *AuthController) StaffLogin(c *gin.Context) {
	var req StaffLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, staff, err := a.Svc.StaffLogin(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, "invalid credentials")
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user":  gin.H{"username": staff.Username, "role": staff.Role},
	})
}

// GET /auth/me (ต้อง login)
func (a *AuthController) Me(c *gin.Context) {
	customer, err := a.Svc.GetProfile(utils.CurrentSubject(c))
	if err != nil {
		resp.BadRequest(c, "user not found")
		return
	}
	resp.OK(c, gin.H{"phone": customer.Phone, "name": customer.Name})
}

// PATCH /auth/me
func (a *AuthController) UpdateMe(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	customer, err := a.Svc.UpdateProfile(utils.CurrentSubject(c), req.Name)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"phone": customer.Phone, "name": customer.Name})
}
