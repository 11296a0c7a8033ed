package productcontroller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Karen-Karapetyan-20/Portfolio-2--Shop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /main?with_respect_to=smartphone
// The storefront homepage feed: every variant's products newest first,
// optionally partitioned so one kind leads.
func GetMainPage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		kinds := models.VariantKinds()
		if raw := c.Query("kinds"); raw != "" {
			kinds = strings.Split(raw, ",")
		}
		withRespectTo := c.Query("with_respect_to")

		products, err := models.NewCatalog(db).Latest(kinds, withRespectTo)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// GET /products/:kind/:slug
func GetProductDetail(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind := c.Param("kind")
		slug := c.Param("slug")

		product, err := models.NewCatalog(db).ResolveBySlug(kind, slug)
		if err != nil {
			if errors.Is(err, models.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"product": product,
			"spec":    product.Spec(),
		})
	}
}

// GET /categories — sidebar data: each category with its product count.
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		counts, err := models.CategoriesWithCounts(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, counts)
	}
}
