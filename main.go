package main

import (
	"fmt"
	"log"

	"github.com/TarunBali/menu-magic-mobile-dine/configs"
	"github.com/TarunBali/menu-magic-mobile-dine/middlewares"
	"github.com/TarunBali/menu-magic-mobile-dine/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedStaff(cfg.StaffUsername, cfg.StaffPassword); err != nil {
		log.Fatalf("seed staff failed: %v", err)
	}
	if err := configs.SeedMenu(); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// HTTP
	r := gin.Default()

	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.Monitoring())

	routes.RegisterRoutes(r, db, cfg)

	port := cfg.Port
	addr := fmt.Sprintf(":%s", port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
