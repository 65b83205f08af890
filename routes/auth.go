package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/siddarthasubedi1/Electro-ecommerce/auth"
	"github.com/siddarthasubedi1/Electro-ecommerce/config"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(db))
		authGroup.POST("/login", auth.Login(db, cfg))
	}
}
