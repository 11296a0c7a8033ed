package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public, user,
// admin and order route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth + storefront routes (no middleware)
	SetupAuthRoutes(r, db)
	SetupStorefrontRoutes(r, db)

	// Customer routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Staff routes (API-key-protected)
	SetupAdminRoutes(r, db)

	// Order staff routes + live feed
	SetupOrderRoutes(r, db)
}
