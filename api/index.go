package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"restaurant-platform/config"
	"restaurant-platform/middleware"
	"restaurant-platform/models"
	"restaurant-platform/routes"
)

var (
	router *gin.Engine
	once   sync.Once
)

// initApp builds the app once per serverless instance. The sweep scheduler
// is not started here; on Vercel the sweeps run through the admin task
// endpoints driven by external cron.
func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		models.InitDB()
		models.InitRedis()

		orderService, paymentService, reservationService, notificationService, sweepService := routes.BuildServices()

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router, orderService, paymentService, reservationService, notificationService, sweepService)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
