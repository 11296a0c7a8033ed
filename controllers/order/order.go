package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	cartControllers "github.com/Karen-Karapetyan-20/Portfolio-2--Shop/controllers/cart"
	"github.com/Karen-Karapetyan-20/Portfolio-2--Shop/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type PlaceOrderRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Address    string `json:"address"`
	Comment    string `json:"comment"`
	BuyingType string `json:"buying_type"`
	OrderDate  string `json:"order_date"` // RFC 3339, defaults to now
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// generateOrderRef builds a unique human-sortable order reference.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Core Logic --------

// PlaceOrder snapshots the owner's active cart into a new order. The cart
// must have at least one line and must not already belong to an order; it
// is frozen behind in_order=true and the owner gets a fresh active cart.
// Everything runs in one transaction.
func PlaceOrder(db *gorm.DB, owner cartControllers.Owner, req PlaceOrderRequest) (*models.Order, error) {
	buyingType, err := models.ParseBuyingType(req.BuyingType)
	if err != nil {
		return nil, err
	}

	orderDate := time.Now()
	if req.OrderDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.OrderDate)
		if err != nil {
			return nil, err
		}
		orderDate = parsed
	}

	var order models.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.Preload("Items").
			Where("owner_key = ? AND in_order = ?", owner.Key, false).
			First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrEmptyCart
		}
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return models.ErrEmptyCart
		}

		customer, err := models.FindOrCreateCustomer(tx, owner.Key, req.FirstName+" "+req.LastName)
		if err != nil {
			return err
		}

		// Freeze the cart and bind it to its customer.
		if err := tx.Model(&cart).Updates(map[string]interface{}{
			"in_order":    true,
			"customer_id": customer.ID,
		}).Error; err != nil {
			return err
		}

		order = models.Order{
			Ref:        generateOrderRef(),
			CustomerID: customer.ID,
			CartID:     cart.ID,
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			Phone:      req.Phone,
			Address:    req.Address,
			Comment:    req.Comment,
			Status:     models.OrderStatusNew,
			BuyingType: buyingType,
			OrderDate:  orderDate,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// A fresh active cart so the owner can keep shopping.
		next := models.Cart{OwnerKey: owner.Key, ForAnonymousUser: owner.Anonymous}
		return tx.Create(&next).Error
	})
	if err != nil {
		return nil, err
	}

	broadcastOrderEvent("order_placed", order)
	return &order, nil
}

// AdvanceStatus moves an order forward through its lifecycle. Backward or
// unknown moves are rejected.
func AdvanceStatus(db *gorm.DB, orderID uint, next models.OrderStatus) (*models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, orderID).Error; err != nil {
			return err
		}
		if !models.CanTransition(order.Status, next) {
			return models.ErrInvalidTransition
		}
		order.Status = next
		return tx.Model(&order).Update("status", next).Error
	})
	if err != nil {
		return nil, err
	}

	broadcastOrderEvent("status_changed", order)
	return &order, nil
}

// -------- Handlers --------

func ownerFromContext(c *gin.Context) (cartControllers.Owner, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return cartControllers.Owner{}, false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return cartControllers.Owner{}, false
	}
	role, _ := c.Get("role")
	return cartControllers.Owner{Key: userID, Anonymous: role == "guest"}, true
}

// POST /user/checkout
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerFromContext(c)
		if !ok {
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := PlaceOrder(db, owner, req)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			case errors.Is(err, models.ErrInvalidTransition):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown buying type"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /user/orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerFromContext(c)
		if !ok {
			return
		}

		var customer models.Customer
		if err := db.Where("user_id = ?", owner.Key).First(&customer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, []models.Order{})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var orders []models.Order
		if err := db.
			Where("customer_id = ?", customer.ID).
			Preload("Cart.Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders (admin)
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Cart.Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderID (admin) — accepts a numeric id or an order ref.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		// Numeric input looks up by primary key; anything else is a ref.
		// Mixing both in one clause would bind the ref string against the
		// bigint id column and fail on postgres.
		query := db.Preload("Cart.Items")
		if numericID, err := strconv.ParseUint(id, 10, 64); err == nil {
			query = query.Where("id = ?", numericID)
		} else {
			query = query.Where("ref = ?", id)
		}

		var order models.Order
		if err := query.First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /orders/:orderID/status (admin)
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		next, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status"})
			return
		}
		order, err := AdvanceStatus(db, uint(orderID), next)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidTransition):
				c.JSON(http.StatusConflict, gin.H{"error": "Order status can only move forward"})
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
