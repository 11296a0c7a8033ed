package productcontroller

import (
	"errors"
	"net/http"

	"github.com/Karen-Karapetyan-20/Portfolio-2--Shop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteProduct removes a product and cascades to cart lines that reference
// it. Only active (not ordered) carts are touched; ordered carts keep their
// priced snapshot. Every affected cart gets its totals recalculated.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
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

		catalog := models.NewCatalog(db)
		product, err := catalog.Resolve(models.ProductRef{Kind: kind, ID: id})
		if err != nil {
			if errors.Is(err, models.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			// Find active carts holding this product before the lines go.
			var cartIDs []uint
			if err := tx.Model(&models.CartItem{}).
				Joins("JOIN carts ON carts.id = cart_items.cart_id").
				Where("cart_items.product_kind = ? AND cart_items.product_id = ? AND carts.in_order = ?",
					kind, id, false).
				Pluck("cart_items.cart_id", &cartIDs).Error; err != nil {
				return err
			}

			if err := tx.
				Where("product_kind = ? AND product_id = ? AND cart_id IN (?)", kind, id,
					tx.Model(&models.Cart{}).Select("id").Where("in_order = ?", false)).
				Delete(&models.CartItem{}).Error; err != nil {
				return err
			}

			for _, cartID := range cartIDs {
				var cart models.Cart
				if err := tx.First(&cart, cartID).Error; err != nil {
					return err
				}
				var items []models.CartItem
				if err := tx.Where("cart_id = ?", cartID).Find(&items).Error; err != nil {
					return err
				}
				cart.Recalc(items)
				if err := tx.Model(&cart).Updates(map[string]interface{}{
					"total_quantity": cart.TotalQuantity,
					"total_price":    cart.TotalPrice,
				}).Error; err != nil {
					return err
				}
			}

			switch v := product.(type) {
			case *models.Notebook:
				return tx.Delete(v).Error
			case *models.Smartphone:
				return tx.Delete(v).Error
			default:
				return models.ErrProductNotFound
			}
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
