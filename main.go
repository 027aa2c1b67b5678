package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"fabric-store/config"
	_ "fabric-store/docs"
	"fabric-store/middleware"
	"fabric-store/models"
	"fabric-store/routes"
)

// @title Velora Fabrics API
// @version 1.0
// @description Storefront API for the Velora Fabrics shop: products, deals, flash sales, FAQ and newsletter.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	models.InitDB()
	defer models.CloseDB()
	models.InitRedis()
	defer models.CloseRedis()

	if err := os.MkdirAll(config.AppConfig.UploadDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	flashSvc := routes.SetupRoutes(router)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	flashSvc.Start(ctx)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
