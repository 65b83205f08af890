package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/siddarthasubedi1/Electro-ecommerce/models"
	"gorm.io/gorm"
)

// DeleteProduct removes a product, its association rows and any cart line
// items pointing at it. Admin only.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&product).Association("Categories").Clear(); err != nil {
				return err
			}
			if err := tx.Model(&product).Association("Tags").Clear(); err != nil {
				return err
			}
			// Line items cascade from the product reference
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
