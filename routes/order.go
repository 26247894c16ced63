package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/sph0ngl3/Pazarm/controllers/order"
	"github.com/sph0ngl3/Pazarm/middleware"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	// websocket endpoint for real-time order tracking
	r.GET("/orders/ws", orderControllers.OrderWebSocketHandler)

	orders := r.Group("/user/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Checkout: cart → order + loyalty + subscription
		orders.POST("/checkout", orderControllers.CheckoutHandler(db))

		// Fetch own orders
		orders.GET("/", orderControllers.GetUserOrdersHandler(db))
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))

		// Close out an in-flight order from the tracking screen
		orders.POST("/:orderID/delivered", orderControllers.MarkDeliveredHandler(db))
	}
}
