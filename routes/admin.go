package routes

import (
	cartControllers "github.com/Karen-Karapetyan-20/Portfolio-2--Shop/controllers/cart"
	customerControllers "github.com/Karen-Karapetyan-20/Portfolio-2--Shop/controllers/customer"
	productcontroller "github.com/Karen-Karapetyan-20/Portfolio-2--Shop/controllers/product"
	"github.com/Karen-Karapetyan-20/Portfolio-2--Shop/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key
// middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Customer Management ───────────
		adminGroup.GET("/customers", customerControllers.GetAllCustomers(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("/:kind", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:kind/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:kind/:id", productcontroller.DeleteProduct(db))
		}
		adminGroup.GET("/catalog/export-excel", productcontroller.ExportCatalogToExcel(db))

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		// ─────────── Cart Inspection ───────────
		cartMgmt := adminGroup.Group("/user-cart")
		{
			cartMgmt.GET("/:owner_key", cartControllers.GetAdminUserCart(db))
		}
	}
}
