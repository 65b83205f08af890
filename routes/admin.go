package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/siddarthasubedi1/Electro-ecommerce/config"
	productControllers "github.com/siddarthasubedi1/Electro-ecommerce/controllers/product"
	userControllers "github.com/siddarthasubedi1/Electro-ecommerce/controllers/user"
	"github.com/siddarthasubedi1/Electro-ecommerce/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(cfg.AdminAPIKey))
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productControllers.CreateProduct(db, cfg))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(db, cfg))
			productAdmin.GET("", productControllers.GetProducts(db, cfg))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(db))
			productAdmin.GET("/export-excel", productControllers.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productControllers.CreateCategory(db))
			categoryAdmin.PUT("/:id", productControllers.UpdateCategory(db))
			categoryAdmin.GET("", productControllers.GetAllCategories(db))
			categoryAdmin.DELETE("/:id", productControllers.DeleteCategory(db))
		}

		// ─────────── Tag Management ───────────
		tagAdmin := adminGroup.Group("/tags")
		{
			tagAdmin.POST("", productControllers.CreateTag(db))
			tagAdmin.PUT("/:id", productControllers.UpdateTag(db))
			tagAdmin.GET("", productControllers.GetAllTags(db))
			tagAdmin.DELETE("/:id", productControllers.DeleteTag(db))
		}
	}
}
