package routes

import (
	orderControllers "github.com/Karen-Karapetyan-20/Portfolio-2--Shop/controllers/order"
	"github.com/Karen-Karapetyan-20/Portfolio-2--Shop/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers the staff-facing "/orders/*" endpoints plus the
// live websocket feed.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateAPIKey)
	{
		// Fetch all orders
		orders.GET("/", orderControllers.GetAllOrdersHandler(db))

		// Fetch one order by id or reference
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))

		// Advance order status (forward only)
		orders.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
	}

	// Websocket endpoint for real-time order updates; staff-only like the
	// rest of the order surface.
	r.GET("/orders-feed", middleware.ValidateAPIKey, orderControllers.OrderWebSocketHandler)
}
