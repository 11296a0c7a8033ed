package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/Karen-Karapetyan-20/Portfolio-2--Shop/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// TokenRequest carries the opaque identity supplied by the external
// identity provider. Verifying that identity is the provider's job; this
// endpoint only exchanges it for an API token and a customer profile.
type TokenRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Name   string `json:"name"`
}

// POST /auth/token
func IssueToken(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		customer, err := models.FindOrCreateCustomer(db, req.UserID, req.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load customer"})
			return
		}

		token, err := issueToken(req.UserID, "user", 7*24*time.Hour)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":    token,
			"customer": customer,
		})
	}
}

func issueToken(userID, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
