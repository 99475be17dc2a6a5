package routes

import (
	"github.com/TarunBali/menu-magic-mobile-dine/configs"
	"github.com/TarunBali/menu-magic-mobile-dine/controllers"
	"github.com/TarunBali/menu-magic-mobile-dine/middlewares"
	"github.com/TarunBali/menu-magic-mobile-dine/repository"
	"github.com/TarunBali/menu-magic-mobile-dine/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Services
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, menuRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL, cfg.DemoOTP)
	configSvc := services.NewConfigService(settingsRepo)
	paymentSvc := services.NewPaymentService(db, orderRepo, cfg.StubDelay)
	reportSvc := services.NewReportService(orderRepo, cfg.StubDelay)

	// Controllers
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	staffOrderCtrl := controllers.NewStaffOrderController(orderSvc)
	authCtrl := controllers.NewAuthController(authSvc)
	configCtrl := controllers.NewConfigController(configSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	reportCtrl := controllers.NewReportController(reportSvc)

	// Catalog (public, read-only)
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/categories", menuCtrl.Categories)

	// Cart (public — keyed by X-Cart-Token, no login needed to browse/add)
	cart := r.Group("/cart")
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items", cartCtrl.UpdateQty)
		cart.DELETE("/items", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/request-otp", authCtrl.RequestOTP)
		a.POST("/verify-otp", authCtrl.VerifyOTP)
		a.POST("/staff/login", authCtrl.StaffLogin)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret, "customer"))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Orders + payment (customer)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, "customer"))
	{
		u.POST("/orders", orderCtrl.Create)
		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.POST("/payments", paymentCtrl.Process)
	}

	// Staff console (admin only)
	staff := r.Group("/staff", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		staff.GET("/orders", staffOrderCtrl.List)
		staff.GET("/orders/:id", orderCtrl.Detail)
		staff.PATCH("/orders/:id/status", staffOrderCtrl.UpdateStatus)
		staff.GET("/dashboard", staffOrderCtrl.Dashboard)
		staff.POST("/reports/export", reportCtrl.Export)
		staff.PUT("/config", configCtrl.Load)
		staff.POST("/config/reset", configCtrl.Reset)
	}

	// Runtime config (read is public so the FE can pick demo vs real mode)
	r.GET("/config", configCtrl.Get)
}
