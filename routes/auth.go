package routes

import (
	"github.com/Karen-Karapetyan-20/Portfolio-2--Shop/auth"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the public "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/token", auth.IssueToken(db))         // POST /auth/token
		authGroup.POST("/guest", auth.CreateGuestSession(db)) // POST /auth/guest
	}
}
