package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/electrohub/storefront-api/controllers/order"
	"github.com/electrohub/storefront-api/middleware"
)

func SetupOrderRoutes(r *gin.Engine, d Deps) {
	orders := r.Group("/user/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Checkout: place a new order
		orders.POST("/", orderControllers.PlaceOrderHandler(d.Registry, d.Gateway))

		// Order history, newest first
		orders.GET("/", orderControllers.GetUserOrdersHandler(d.Registry))

		// Invoice view by order id
		orders.GET("/:order_id", orderControllers.GetOrderHandler(d.Registry))
	}

	// websocket endpoint for real-time order updates
	r.GET("/orders/ws", orderControllers.OrderWebSocketHandler)
}
