package orderControllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	cartControllers "github.com/Karen-Karapetyan-20/Portfolio-2--Shop/controllers/cart"
	"github.com/Karen-Karapetyan-20/Portfolio-2--Shop/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:order_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Category{}, &models.Notebook{}, &models.Smartphone{},
		&models.Cart{}, &models.CartItem{}, &models.Customer{}, &models.Order{},
	))
	return db
}

func seedNotebook(t *testing.T, db *gorm.DB) models.Notebook {
	t.Helper()
	category := models.Category{Name: "Notebooks", Slug: "notebooks"}
	require.NoError(t, db.Create(&category).Error)

	nb := models.Notebook{
		Product: models.Product{
			CategoryID: category.ID,
			Title:      "Test Notebook",
			Slug:       "test-notebook",
			Price:      decimal.RequireFromString("50000.00"),
		},
		Diagonal:          "15.6",
		DisplayType:       "IPS",
		ProcessorFreq:     "3.2 GHz",
		RAM:               "16 GB",
		Video:             "GeForce",
		TimeWithoutCharge: "6 hours",
	}
	require.NoError(t, db.Create(&nb).Error)
	return nb
}

func shippingRequest() PlaceOrderRequest {
	return PlaceOrderRequest{
		FirstName: "Karen",
		LastName:  "Karapetyan",
		Phone:     "+374-00-000000",
		Address:   "Yerevan",
	}
}

func TestPlaceOrder(t *testing.T) {
	db := newTestDB(t)
	nb := seedNotebook(t, db)
	owner := cartControllers.Owner{Key: "user-1"}

	cart, err := cartControllers.AddToCart(db, owner, models.RefOf(&nb), 1)
	require.NoError(t, err)

	order, err := PlaceOrder(db, owner, shippingRequest())
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusNew, order.Status)
	assert.Equal(t, models.BuyingTypeSelf, order.BuyingType)
	assert.NotEmpty(t, order.Ref)
	assert.Equal(t, cart.ID, order.CartID)

	// The ordered cart is frozen.
	var frozen models.Cart
	require.NoError(t, db.First(&frozen, cart.ID).Error)
	assert.True(t, frozen.InOrder)

	// Exactly one order exists.
	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Equal(t, int64(1), orderCount)

	// The owner gets a fresh, empty active cart.
	next, err := cartControllers.ActiveCart(db, owner)
	require.NoError(t, err)
	assert.NotEqual(t, cart.ID, next.ID)
	assert.False(t, next.InOrder)
	assert.Empty(t, next.Items)

	// A customer profile was created and linked.
	var customer models.Customer
	require.NoError(t, db.Where("user_id = ?", owner.Key).First(&customer).Error)
	assert.Equal(t, customer.ID, order.CustomerID)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := newTestDB(t)
	seedNotebook(t, db)
	owner := cartControllers.Owner{Key: "user-1"}

	cart, err := cartControllers.ActiveCart(db, owner)
	require.NoError(t, err)

	_, err = PlaceOrder(db, owner, shippingRequest())
	assert.ErrorIs(t, err, models.ErrEmptyCart)

	// The cart stays usable.
	var reloaded models.Cart
	require.NoError(t, db.First(&reloaded, cart.ID).Error)
	assert.False(t, reloaded.InOrder)

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Equal(t, int64(0), orderCount)
}

func TestPlaceOrderWithoutAnyCart(t *testing.T) {
	db := newTestDB(t)
	seedNotebook(t, db)

	_, err := PlaceOrder(db, cartControllers.Owner{Key: "nobody"}, shippingRequest())
	assert.ErrorIs(t, err, models.ErrEmptyCart)
}

func TestPlaceOrderTwiceUsesFreshCart(t *testing.T) {
	db := newTestDB(t)
	nb := seedNotebook(t, db)
	owner := cartControllers.Owner{Key: "user-1"}

	_, err := cartControllers.AddToCart(db, owner, models.RefOf(&nb), 1)
	require.NoError(t, err)
	first, err := PlaceOrder(db, owner, shippingRequest())
	require.NoError(t, err)

	// Second checkout without new items hits the fresh empty cart.
	_, err = PlaceOrder(db, owner, shippingRequest())
	assert.ErrorIs(t, err, models.ErrEmptyCart)

	_, err = cartControllers.AddToCart(db, owner, models.RefOf(&nb), 2)
	require.NoError(t, err)
	second, err := PlaceOrder(db, owner, shippingRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.CartID, second.CartID)
	assert.NotEqual(t, first.Ref, second.Ref)
}

func TestPlaceOrderBuyingType(t *testing.T) {
	db := newTestDB(t)
	nb := seedNotebook(t, db)
	owner := cartControllers.Owner{Key: "user-1"}

	_, err := cartControllers.AddToCart(db, owner, models.RefOf(&nb), 1)
	require.NoError(t, err)

	req := shippingRequest()
	req.BuyingType = "delivery"
	order, err := PlaceOrder(db, owner, req)
	require.NoError(t, err)
	assert.Equal(t, models.BuyingTypeDelivery, order.BuyingType)

	req.BuyingType = "teleport"
	_, err = PlaceOrder(db, owner, req)
	assert.Error(t, err)
}

func TestGetOrderByIDAndByRef(t *testing.T) {
	db := newTestDB(t)
	nb := seedNotebook(t, db)
	owner := cartControllers.Owner{Key: "user-1"}

	_, err := cartControllers.AddToCart(db, owner, models.RefOf(&nb), 1)
	require.NoError(t, err)
	order, err := PlaceOrder(db, owner, shippingRequest())
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/orders/:orderID", GetOrderByIDHandler(db))

	// Numeric id lookup.
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/orders/%d", order.ID), nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), order.Ref)

	// Ref lookup; the ref is never numeric, so only the ref column is queried.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/orders/"+order.Ref, nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), order.Ref)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/orders/no-such-ref", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlaceOrderHandlerRejectsBadUserClaim(t *testing.T) {
	db := newTestDB(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Simulates a validly-signed token whose user_id claim is not a string.
	r.POST("/checkout", func(c *gin.Context) {
		c.Set("user_id", 42)
	}, PlaceOrderHandler(db))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/checkout", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdvanceStatus(t *testing.T) {
	db := newTestDB(t)
	nb := seedNotebook(t, db)
	owner := cartControllers.Owner{Key: "user-1"}

	_, err := cartControllers.AddToCart(db, owner, models.RefOf(&nb), 1)
	require.NoError(t, err)
	order, err := PlaceOrder(db, owner, shippingRequest())
	require.NoError(t, err)

	updated, err := AdvanceStatus(db, order.ID, models.OrderStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusInProgress, updated.Status)

	updated, err = AdvanceStatus(db, order.ID, models.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, updated.Status)
}

func TestAdvanceStatusRejectsBackward(t *testing.T) {
	db := newTestDB(t)
	nb := seedNotebook(t, db)
	owner := cartControllers.Owner{Key: "user-1"}

	_, err := cartControllers.AddToCart(db, owner, models.RefOf(&nb), 1)
	require.NoError(t, err)
	order, err := PlaceOrder(db, owner, shippingRequest())
	require.NoError(t, err)

	_, err = AdvanceStatus(db, order.ID, models.OrderStatusReady)
	require.NoError(t, err)

	_, err = AdvanceStatus(db, order.ID, models.OrderStatusInProgress)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)

	// Status unchanged after the rejected move.
	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Equal(t, models.OrderStatusReady, reloaded.Status)
}
