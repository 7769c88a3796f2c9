package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"restaurant-platform/controllers"
	"restaurant-platform/middleware"
	"restaurant-platform/repositories"
	"restaurant-platform/services"
)

// BuildServices wires the repositories into the service graph. The sweep
// service is returned so main can hand it to the scheduler as well.
func BuildServices() (*services.OrderService, *services.PaymentService,
	*services.ReservationService, *services.NotificationService, *services.SweepService) {

	orderRepo := repositories.NewOrderRepository()
	paymentRepo := repositories.NewPaymentRepository()
	reservationRepo := repositories.NewReservationRepository()
	menuRepo := repositories.NewMenuRepository()
	promoRepo := repositories.NewPromoRepository()
	restaurantRepo := repositories.NewRestaurantRepository()
	inventoryRepo := repositories.NewInventoryRepository()
	notificationRepo := repositories.NewNotificationRepository()

	notificationService := services.NewNotificationService(notificationRepo)
	inventoryService := services.NewInventoryService(inventoryRepo, menuRepo, restaurantRepo, notificationService)
	orderService := services.NewOrderService(orderRepo, paymentRepo, notificationService,
		inventoryService, menuRepo, promoRepo, restaurantRepo)
	paymentService := services.NewPaymentService(paymentRepo, orderService)
	reservationService := services.NewReservationService(reservationRepo, restaurantRepo, notificationService)
	sweepService := services.NewSweepService(orderRepo, reservationRepo, notificationService)

	return orderService, paymentService, reservationService, notificationService, sweepService
}

func SetupRoutes(router *gin.Engine,
	orderService *services.OrderService,
	paymentService *services.PaymentService,
	reservationService *services.ReservationService,
	notificationService *services.NotificationService,
	sweepService *services.SweepService) {

	authCtrl := controllers.NewAuthController()
	userCtrl := controllers.NewUserController()
	restaurantCtrl := controllers.NewRestaurantController()
	menuCtrl := controllers.NewMenuController()
	orderCtrl := controllers.NewOrderController(orderService)
	paymentCtrl := controllers.NewPaymentController(paymentService)
	reservationCtrl := controllers.NewReservationController(reservationService)
	inventoryCtrl := controllers.NewInventoryController()
	notificationCtrl := controllers.NewNotificationController(notificationService)
	promoCtrl := controllers.NewPromoController()
	supportCtrl := controllers.NewSupportController()
	taskCtrl := controllers.NewTaskController(sweepService)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/forgot-password", authCtrl.ForgotPassword)
	router.POST("/auth/reset-password", authCtrl.ResetPassword)

	router.GET("/restaurants", restaurantCtrl.List)
	router.GET("/restaurants/:id", restaurantCtrl.Get)
	router.GET("/restaurants/:id/tables", restaurantCtrl.ListTables)
	router.GET("/restaurants/:id/categories", menuCtrl.ListCategories)
	router.GET("/restaurants/:id/menu", menuCtrl.ListItems)
	router.GET("/restaurants/:id/available-tables", reservationCtrl.AvailableTables)
	router.GET("/menu-items/:id", menuCtrl.GetItem)
	router.GET("/promotions", promoCtrl.List)

	router.POST("/payments/webhook", paymentCtrl.Webhook)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/profile", authCtrl.GetProfile)
		auth.PUT("/profile", authCtrl.UpdateProfile)
		auth.POST("/profile/photo", authCtrl.UploadProfilePhoto)
		auth.PUT("/profile/password", authCtrl.ChangePassword)

		auth.POST("/orders", orderCtrl.Checkout)
		auth.GET("/orders", orderCtrl.List)
		auth.GET("/orders/:id", orderCtrl.Get)
		auth.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)

		auth.GET("/payments", paymentCtrl.List)
		auth.GET("/payments/:id", paymentCtrl.Get)
		auth.POST("/payments/:id/capture", paymentCtrl.Capture)

		auth.POST("/reservations", reservationCtrl.Create)
		auth.GET("/reservations", reservationCtrl.List)
		auth.GET("/reservations/:id", reservationCtrl.Get)
		auth.PATCH("/reservations/:id/cancel", reservationCtrl.Cancel)

		auth.GET("/notifications", notificationCtrl.List)
		auth.GET("/notifications/unread-count", notificationCtrl.UnreadCount)
		auth.PATCH("/notifications/:id/read", notificationCtrl.MarkRead)
		auth.PATCH("/notifications/read-all", notificationCtrl.MarkAllRead)

		auth.POST("/support/tickets", supportCtrl.Create)
		auth.GET("/support/tickets", supportCtrl.List)
		auth.GET("/support/tickets/:id", supportCtrl.Get)
	}

	owner := router.Group("/")
	owner.Use(middleware.AuthMiddleware(), middleware.OwnerMiddleware())
	{
		owner.POST("/restaurants", restaurantCtrl.Create)
		owner.PUT("/restaurants/:id", restaurantCtrl.Update)
		owner.DELETE("/restaurants/:id", restaurantCtrl.Delete)
		owner.POST("/restaurants/:id/image", restaurantCtrl.UploadImage)

		owner.POST("/restaurants/:id/tables", restaurantCtrl.CreateTable)
		owner.PUT("/tables/:id", restaurantCtrl.UpdateTable)
		owner.DELETE("/tables/:id", restaurantCtrl.DeleteTable)

		owner.POST("/restaurants/:id/categories", menuCtrl.CreateCategory)
		owner.PUT("/categories/:id", menuCtrl.UpdateCategory)
		owner.DELETE("/categories/:id", menuCtrl.DeleteCategory)

		owner.POST("/restaurants/:id/menu", menuCtrl.CreateItem)
		owner.PUT("/menu-items/:id", menuCtrl.UpdateItem)
		owner.DELETE("/menu-items/:id", menuCtrl.DeleteItem)
		owner.POST("/menu-items/:id/image", menuCtrl.UploadItemImage)

		owner.PATCH("/reservations/:id/confirm", reservationCtrl.Confirm)

		owner.GET("/restaurants/:id/inventory", inventoryCtrl.List)
		owner.POST("/restaurants/:id/inventory", inventoryCtrl.Create)
		owner.POST("/restaurants/:id/inventory/:itemId/adjust", inventoryCtrl.Adjust)
		owner.GET("/restaurants/:id/inventory/:itemId/movements", inventoryCtrl.Movements)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/users", userCtrl.GetAllUsers)
		admin.GET("/users/:id", userCtrl.GetUserByID)
		admin.POST("/users", userCtrl.CreateUser)
		admin.PATCH("/users/:id", userCtrl.UpdateUser)
		admin.DELETE("/users/:id", userCtrl.DeleteUser)

		admin.GET("/promotions", promoCtrl.ListAll)
		admin.POST("/promotions", promoCtrl.Create)
		admin.PUT("/promotions/:id", promoCtrl.Update)
		admin.DELETE("/promotions/:id", promoCtrl.Delete)

		admin.PATCH("/support/tickets/:id/status", supportCtrl.UpdateStatus)

		admin.POST("/tasks/auto-cancel-orders", taskCtrl.AutoCancelOrders)
		admin.POST("/tasks/mark-no-shows", taskCtrl.MarkNoShows)
	}
}
