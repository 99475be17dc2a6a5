package middlewares

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func CORSMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins:  []string{"*"}, // dev only; prod should pin the real origin
		AllowMethods:  []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type", "X-Cart-Token"},
		ExposeHeaders: []string{"Content-Length", "X-Cart-Token"},
		MaxAge:        12 * time.Hour,
	}
	return cors.New(cfg)
}
