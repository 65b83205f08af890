package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/siddarthasubedi1/Electro-ecommerce/models"
	"gorm.io/gorm"
)

// GET /
//
// Homepage collections, one list per section flag, newest first.
func Home(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sections := map[string]string{
			"all_products": "all_products",
			"featured":     "featured",
			"new_arrivals": "new_arrivals",
			"top_selling":  "top_selling",
		}

		payload := gin.H{"cart_product_ids": cartProductIDs(db, c)}

		var products []models.Product
		if err := db.Order("created_at desc").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		payload["products"] = products

		for key, column := range sections {
			var section []models.Product
			if err := db.Where(column+" = ?", true).Order("created_at desc").Find(&section).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
				return
			}
			payload[key] = section
		}

		c.JSON(http.StatusOK, payload)
	}
}

// GET /bestseller
func Bestseller(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Where("top_selling = ?", true).Order("created_at desc").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products":         products,
			"cart_product_ids": cartProductIDs(db, c),
		})
	}
}
