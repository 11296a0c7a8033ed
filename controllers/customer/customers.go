package customerControllers

import (
	"errors"
	"net/http"

	"github.com/Karen-Karapetyan-20/Portfolio-2--Shop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateCustomerInput struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// GET /user/profile
func GetCustomer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var customer models.Customer
		if err := db.Preload("Orders").Where("user_id = ?", userID).First(&customer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customer"})
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

// PUT /user/profile — creates the profile on first use, then patches the
// supplied fields.
func UpdateCustomer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")
		userID := userIDVal.(string)

		var input UpdateCustomerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		customer, err := models.FindOrCreateCustomer(db, userID, "")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load customer"})
			return
		}

		if input.Name != nil {
			customer.Name = *input.Name
		}
		if input.Phone != nil {
			customer.Phone = *input.Phone
		}
		if input.Address != nil {
			customer.Address = *input.Address
		}
		if err := db.Save(customer).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

// GET /admin/customers
func GetAllCustomers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var customers []models.Customer
		if err := db.Order("created_at desc").Find(&customers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
			return
		}
		c.JSON(http.StatusOK, customers)
	}
}
