package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/siddarthasubedi1/Electro-ecommerce/config"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public store,
// auth, user and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db, cfg)

	// Public catalog routes (optional identity for in-cart markers)
	SetupStoreRoutes(r, db, cfg)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db, cfg)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db, cfg)
}
