package routes

import (
	"github.com/gin-gonic/gin"

	"storefront-service/config"
	"storefront-service/controllers"
	"storefront-service/middleware"
	"storefront-service/repository"
	"storefront-service/services"
)

// Register wires every storefront route group onto the router.
func Register(
	r *gin.Engine,
	cfg config.Config,
	cartController *controllers.CartController,
	checkoutService *services.CheckoutService,
	orderClient services.OrderAPI,
	authService *services.AuthService,
	paymentClient services.PaymentClient,
	notificationRepo repository.NotificationRepository,
) {
	menuController := controllers.NewMenuController()
	checkoutController := controllers.NewCheckoutController(checkoutService)
	orderController := controllers.NewOrderController(orderClient)
	authController := controllers.NewAuthController(authService)

	menu := r.Group("/menu")
	{
		menu.GET("", menuController.GetMenu)
		menu.GET("/items", menuController.GetItems)
	}

	cart := r.Group("/cart")
	cart.Use(middleware.Session())
	{
		cart.GET("", cartController.GetCart)
		cart.POST("/add", cartController.AddItem)
		cart.PATCH("/items/:cart_item_id", cartController.UpdateQuantity)
		cart.DELETE("/items/:cart_item_id", cartController.RemoveItem)
		cart.DELETE("", cartController.ClearCart)
	}

	checkout := r.Group("/checkout")
	checkout.Use(middleware.RequireSession())
	{
		checkout.POST("", checkoutController.Submit)
		checkout.GET("/address", checkoutController.SavedAddress)
	}

	orders := r.Group("/orders")
	{
		orders.GET("/:order_id", orderController.GetOrder)
	}

	auth := r.Group("/auth")
	{
		auth.POST("/otp/send", middleware.OTPRateLimit(), authController.SendCode)
		auth.POST("/otp/verify", authController.VerifyCode)
		auth.POST("/login", authController.Login)
		auth.GET("/me", middleware.Auth(cfg.JWTSecret), authController.Me)
	}

	if paymentClient != nil {
		paymentController := controllers.NewPaymentController(paymentClient)
		r.POST("/payments/intent", paymentController.CreateIntent)
	}

	if notificationRepo != nil {
		notificationController := controllers.NewNotificationController(notificationRepo)
		r.GET("/admin/notifications", notificationController.GetLogs)
	}
}
