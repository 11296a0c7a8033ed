package routes

import (
	cartControllers "github.com/Karen-Karapetyan-20/Portfolio-2--Shop/controllers/cart"
	customerControllers "github.com/Karen-Karapetyan-20/Portfolio-2--Shop/controllers/customer"
	orderControllers "github.com/Karen-Karapetyan-20/Portfolio-2--Shop/controllers/order"
	"github.com/Karen-Karapetyan-20/Portfolio-2--Shop/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware;
// guest tokens work for everything except the profile endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/profile", customerControllers.GetCustomer(db))    // GET /user/profile
		userGroup.PUT("/profile", customerControllers.UpdateCustomer(db)) // PUT /user/profile

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(db))                            // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(db))                       // POST /user/cart
			cartGroup.PUT("/quantity", cartControllers.UpdateCartQuantity(db))         // PUT /user/cart/quantity
			cartGroup.DELETE("/:kind/:product_id", cartControllers.DeleteCartItem(db)) // DELETE /user/cart/:kind/:product_id
			cartGroup.DELETE("/", cartControllers.ClearCartHandler(db))                // DELETE /user/cart
		}

		// ──────────────── Checkout & Orders ────────────────
		userGroup.POST("/checkout", orderControllers.PlaceOrderHandler(db)) // POST /user/checkout
		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(db)) // GET /user/orders
	}
}
