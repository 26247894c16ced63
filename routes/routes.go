package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sph0ngl3/Pazarm/cache"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the Auth, Public,
// User, Order, and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, rdb cache.Cache) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Public catalog routes (markets, products, campaigns, content)
	SetupPublicRoutes(r, db, rdb)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Order routes (checkout, tracking)
	SetupOrderRoutes(r, db)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db, rdb)
}
