package cartControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/siddarthasubedi1/Electro-ecommerce/config"
	"github.com/siddarthasubedi1/Electro-ecommerce/models"
	"gorm.io/gorm"
)

type AddToCartInput struct {
	Quantity int `json:"quantity"`
}

type UpdateQuantityInput struct {
	Action string `json:"action" binding:"required,oneof=increase decrease"`
}

func requestUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userIDVal.(string), true
}

// ownedCartItem fetches a line item only when it belongs to a cart owned by
// userID. This join is the sole access-control gate on cart mutation.
func ownedCartItem(db *gorm.DB, itemID string, userID string) (*models.CartItem, error) {
	var item models.CartItem
	err := db.
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// POST /user/cart/:id/add
//
// Get-or-create the cart, then get-or-create-or-increment the line item in a
// single transaction. The increment is one conditional UPDATE so two rapid
// adds from the same user cannot lose each other's write.
func AddToCart(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}

		productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		quantity := 1
		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err == nil && input.Quantity != 0 {
			quantity = input.Quantity
		}
		quantity = models.ClampQuantity(quantity)

		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		var item models.CartItem
		var created bool
		err = db.Transaction(func(tx *gorm.DB) error {
			var cart models.Cart
			if err := tx.Where(models.Cart{UserID: userID}).FirstOrCreate(&cart).Error; err != nil {
				return err
			}

			// Atomic read-modify-write: the sum is clamped at the maximum in
			// the same statement that increments it.
			res := tx.Model(&models.CartItem{}).
				Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).
				Update("quantity", gorm.Expr(
					"CASE WHEN quantity + ? >= ? THEN ? ELSE quantity + ? END",
					quantity, models.MaxQuantity, models.MaxQuantity, quantity))
			if res.Error != nil {
				return res.Error
			}

			if res.RowsAffected == 0 {
				// The (cart_id, product_id) unique index turns a concurrent
				// double-create into an error instead of a duplicate row.
				created = true
				item = models.CartItem{
					CartID:    cart.ID,
					ProductID: product.ID,
					Quantity:  quantity,
					AddedAt:   time.Now(),
				}
				return tx.Create(&item).Error
			}

			return tx.Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).First(&item).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		status := http.StatusOK
		message := "Added to cart"
		if created {
			status = http.StatusCreated
		} else {
			message = "Added more to cart"
		}
		c.JSON(status, gin.H{
			"message":  message,
			"item_id":  item.ID,
			"quantity": item.Quantity,
			"created":  created,
		})
	}
}

// GET /user/cart
//
// Returns the cart's line items with computed totals. Any storage failure
// while loading or computing collapses into one generic message.
func GetUserCart(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}

		var cart models.Cart
		if err := db.Where(models.Cart{UserID: userID}).FirstOrCreate(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong loading your cart"})
			return
		}

		var items []models.CartItem
		if err := db.Preload("Product").Where("cart_id = ?", cart.ID).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong loading your cart"})
			return
		}

		subtotal := decimal.Zero
		for _, item := range items {
			if item.Product.ID == 0 {
				// dangling product reference
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong loading your cart"})
				return
			}
			subtotal = subtotal.Add(item.LineTotal())
		}

		tax := subtotal.Mul(cfg.TaxRate).Round(2)
		total := subtotal.Add(tax)

		c.JSON(http.StatusOK, gin.H{
			"items":     items,
			"subtotal":  subtotal,
			"tax":       tax,
			"total":     total,
			"has_items": len(items) > 0,
		})
	}
}

// POST /user/cart/:id/update
//
// Steps a line item's quantity up or down by one. Increasing stops at the
// maximum; decreasing below the minimum removes the item.
func UpdateCartQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := ownedCartItem(db, c.Param("id"), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item doesn't exist or doesn't belong to you"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart quantity"})
			}
			return
		}

		switch input.Action {
		case "increase":
			res := db.Model(&models.CartItem{}).
				Where("id = ? AND quantity < ?", item.ID, models.MaxQuantity).
				Update("quantity", gorm.Expr("quantity + 1"))
			if res.Error != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart quantity"})
				return
			}
			if res.RowsAffected == 0 {
				c.JSON(http.StatusOK, gin.H{"warning": "Maximum quantity is 99", "quantity": item.Quantity})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Quantity increased", "quantity": item.Quantity + 1})

		case "decrease":
			removed := false
			err := db.Transaction(func(tx *gorm.DB) error {
				res := tx.Model(&models.CartItem{}).
					Where("id = ? AND quantity > ?", item.ID, models.MinQuantity).
					Update("quantity", gorm.Expr("quantity - 1"))
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					// already at the minimum, so the step removes the item
					removed = true
					return tx.Delete(&models.CartItem{}, item.ID).Error
				}
				return nil
			})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart quantity"})
				return
			}
			if removed {
				c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart", "removed": true})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Quantity decreased", "quantity": item.Quantity - 1})
		}
	}
}

// DELETE /user/cart/:id
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}

		item, err := ownedCartItem(db, c.Param("id"), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item doesn't exist or doesn't belong to you"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			}
			return
		}

		if err := db.Delete(&models.CartItem{}, item.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted successfully"})
	}
}

// DELETE /user/cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			}
			return
		}

		if err := db.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
