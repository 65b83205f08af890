package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/siddarthasubedi1/Electro-ecommerce/config"
	cartControllers "github.com/siddarthasubedi1/Electro-ecommerce/controllers/cart"
	userControllers "github.com/siddarthasubedi1/Electro-ecommerce/controllers/user"
	"github.com/siddarthasubedi1/Electro-ecommerce/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(db)) // PUT /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCart(db, cfg))             // GET /user/cart
			cartGroup.POST("/:id/add", cartControllers.AddToCart(db, cfg))      // POST /user/cart/:id/add (id = product)
			cartGroup.POST("/:id/update", cartControllers.UpdateCartQuantity(db)) // POST /user/cart/:id/update (id = line item)
			cartGroup.DELETE("/:id", cartControllers.RemoveFromCart(db))        // DELETE /user/cart/:id (id = line item)
			cartGroup.DELETE("", cartControllers.ClearUserCart(db))             // DELETE /user/cart
		}
	}
}
