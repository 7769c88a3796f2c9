package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"restaurant-platform/config"
	_ "restaurant-platform/docs"
	"restaurant-platform/middleware"
	"restaurant-platform/models"
	"restaurant-platform/routes"
	"restaurant-platform/services"
)

// @title Restaurant Platform API
// @version 1.0
// @description Restaurant management API: orders, reservations, inventory and notifications
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

	orderService, paymentService, reservationService, notificationService, sweepService := routes.BuildServices()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scheduler := services.NewScheduler(sweepService,
		config.AppConfig.AutoCancelInterval, config.AppConfig.NoShowInterval)
	scheduler.Start(ctx)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, orderService, paymentService, reservationService, notificationService, sweepService)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
