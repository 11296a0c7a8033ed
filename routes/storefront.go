package routes

import (
	productcontroller "github.com/Karen-Karapetyan-20/Portfolio-2--Shop/controllers/product"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupStorefrontRoutes registers the public catalog endpoints anyone can
// browse without a token.
func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/main", productcontroller.GetMainPage(db))
	r.GET("/products/:kind/:slug", productcontroller.GetProductDetail(db))
	r.GET("/categories", productcontroller.GetCategories(db))
}
