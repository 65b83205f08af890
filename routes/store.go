package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/siddarthasubedi1/Electro-ecommerce/config"
	productControllers "github.com/siddarthasubedi1/Electro-ecommerce/controllers/product"
	"github.com/siddarthasubedi1/Electro-ecommerce/middleware"
	"gorm.io/gorm"
)

// SetupStoreRoutes registers the public catalog endpoints. A token is not
// required, but when one is present the responses include the caller's
// in-cart product IDs.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	storeGroup := r.Group("/")
	storeGroup.Use(middleware.OptionalToken(cfg.JWTSecret))
	{
		storeGroup.GET("", productControllers.Home(db))                       // GET /
		storeGroup.GET("/shop", productControllers.GetProducts(db, cfg))      // GET /shop
		storeGroup.GET("/bestseller", productControllers.Bestseller(db))      // GET /bestseller
		storeGroup.GET("/products/:id", productControllers.GetProductByID(db)) // GET /products/:id
		storeGroup.GET("/categories", productControllers.GetAllCategories(db)) // GET /categories
		storeGroup.GET("/categories/:id", productControllers.GetCategoryByID(db))
		storeGroup.GET("/tags", productControllers.GetAllTags(db))
	}
}
