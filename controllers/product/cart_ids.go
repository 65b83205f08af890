package productcontroller

import (
	"github.com/gin-gonic/gin"
	"github.com/siddarthasubedi1/Electro-ecommerce/models"
	"gorm.io/gorm"
)

// cartProductIDs returns the IDs of products in the requester's cart so the
// frontend can mark them as already added. Anonymous visitors and users
// without a cart get an empty list.
func cartProductIDs(db *gorm.DB, c *gin.Context) []uint {
	ids := []uint{}

	userID, exists := c.Get("user_id")
	if !exists {
		return ids
	}

	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return ids
	}

	db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Pluck("product_id", &ids)
	return ids
}
