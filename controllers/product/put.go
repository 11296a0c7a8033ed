package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Karen-Karapetyan-20/Portfolio-2--Shop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return 0, false
	}
	return uint(id), true
}

// UpdateProduct replaces the editable fields of an existing product.
// The body uses the same shape as CreateProduct.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind := c.Param("kind")
		if !models.KnownKind(kind) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown product kind"})
			return
		}
		id, ok := parseIDParam(c)
		if !ok {
			return
		}

		switch kind {
		case models.KindNotebook:
			var existing models.Notebook
			if err := db.First(&existing, id).Error; err != nil {
				productLookupError(c, err)
				return
			}
			var input models.Notebook
			if err := c.ShouldBindJSON(&input); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
				return
			}
			if msg := validateProduct(&input.Product); msg != "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": msg})
				return
			}
			input.ID = existing.ID
			input.CreatedAt = existing.CreatedAt
			if err := db.Save(&input).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
				return
			}
			c.JSON(http.StatusOK, input)

		case models.KindSmartphone:
			var existing models.Smartphone
			if err := db.First(&existing, id).Error; err != nil {
				productLookupError(c, err)
				return
			}
			var input models.Smartphone
			if err := c.ShouldBindJSON(&input); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
				return
			}
			if msg := validateProduct(&input.Product); msg != "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": msg})
				return
			}
			if !input.SD {
				input.SDVolumeMax = nil
			}
			input.ID = existing.ID
			input.CreatedAt = existing.CreatedAt
			if err := db.Save(&input).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
				return
			}
			c.JSON(http.StatusOK, input)
		}
	}
}

func productLookupError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
}
