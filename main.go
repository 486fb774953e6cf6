package main

import (
	"fmt"
	"log"

	"github.com/sierracataloguebusiness/sierra-catalogue/configs"
	"github.com/sierracataloguebusiness/sierra-catalogue/middlewares"
	"github.com/sierracataloguebusiness/sierra-catalogue/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedCategories(); err != nil {
		log.Fatalf("seed categories failed: %v", err)
	}

	// HTTP
	r := gin.Default()

	// ✅ Enable CORS
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))

	// ✅ Serve uploaded files (listing images, shop logos)
	r.Static("/uploads", "./"+cfg.UploadDir)

	// ✅ Register API routes
	routes.RegisterRoutes(r, db, cfg)

	// ✅ Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
