package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Karen-Karapetyan-20/Portfolio-2--Shop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartItemInput struct {
	Kind      string `json:"kind" binding:"required"`
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

func ownerFromContext(c *gin.Context) (Owner, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return Owner{}, false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return Owner{}, false
	}
	role, _ := c.Get("role")
	return Owner{
		Key:       userID,
		Anonymous: role == "guest",
	}, true
}

func cartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product is not available"})
	case errors.Is(err, models.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be positive; remove the item instead"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cart operation failed"})
	}
}

// GET /user/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerFromContext(c)
		if !ok {
			return
		}
		cart, err := ActiveCart(db, owner)
		if err != nil {
			cartError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST /user/cart
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerFromContext(c)
		if !ok {
			return
		}
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		ref := models.ProductRef{Kind: input.Kind, ID: input.ProductID}
		cart, err := AddToCart(db, owner, ref, input.Quantity)
		if err != nil {
			cartError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// PUT /user/cart/quantity
func UpdateCartQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerFromContext(c)
		if !ok {
			return
		}
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		ref := models.ProductRef{Kind: input.Kind, ID: input.ProductID}
		cart, err := SetQuantity(db, owner, ref, input.Quantity)
		if err != nil {
			cartError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /user/cart/:kind/:product_id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerFromContext(c)
		if !ok {
			return
		}
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		ref := models.ProductRef{Kind: c.Param("kind"), ID: uint(productID)}
		cart, err := RemoveFromCart(db, owner, ref)
		if err != nil {
			cartError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /user/cart
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerFromContext(c)
		if !ok {
			return
		}
		cart, err := ClearCart(db, owner)
		if err != nil {
			cartError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// GET /admin/user-cart/:owner_key — staff view of any owner's active cart.
func GetAdminUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerKey := c.Param("owner_key")
		if ownerKey == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "owner_key is required"})
			return
		}
		var cart models.Cart
		if err := db.Preload("Items").
			Where("owner_key = ? AND in_order = ?", ownerKey, false).
			First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}
