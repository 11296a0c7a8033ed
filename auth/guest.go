package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// POST /auth/guest — anonymous shoppers get a throwaway identity so their
// cart survives across requests. Carts opened under a guest identity are
// flagged for_anonymous_user.
func CreateGuestSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := "guest_" + uuid.NewString()

		token, err := issueToken(guestID, "guest", 24*time.Hour)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"guest_id":   guestID,
			"token":      token,
			"expires_at": time.Now().Add(24 * time.Hour),
		})
	}
}
