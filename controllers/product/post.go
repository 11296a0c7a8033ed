package productcontroller

import (
	"net/http"

	"github.com/Karen-Karapetyan-20/Portfolio-2--Shop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateProduct creates a product of the kind named in the URL. The request
// body carries the shared fields plus the kind's own attribute set; image
// handling lives in an external service, so only a stored URL is accepted.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind := c.Param("kind")
		if !models.KnownKind(kind) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown product kind"})
			return
		}

		switch kind {
		case models.KindNotebook:
			var notebook models.Notebook
			if err := c.ShouldBindJSON(&notebook); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
				return
			}
			if msg := validateProduct(&notebook.Product); msg != "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": msg})
				return
			}
			notebook.ID = 0
			if err := db.Create(&notebook).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
				return
			}
			c.JSON(http.StatusCreated, notebook)

		case models.KindSmartphone:
			var smartphone models.Smartphone
			if err := c.ShouldBindJSON(&smartphone); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
				return
			}
			if msg := validateProduct(&smartphone.Product); msg != "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": msg})
				return
			}
			// No SD slot means no max-volume value to keep.
			if !smartphone.SD {
				smartphone.SDVolumeMax = nil
			}
			smartphone.ID = 0
			if err := db.Create(&smartphone).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
				return
			}
			c.JSON(http.StatusCreated, smartphone)
		}
	}
}

// validateProduct checks the shared field invariants. Returns an error
// message, empty when valid.
func validateProduct(p *models.Product) string {
	if p.Title == "" {
		return "title is required"
	}
	if p.Slug == "" {
		return "slug is required"
	}
	if p.CategoryID == 0 {
		return "category_id is required"
	}
	if p.Price.IsNegative() {
		return "price must not be negative"
	}
	return ""
}
