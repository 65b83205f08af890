package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/siddarthasubedi1/Electro-ecommerce/config"
	"github.com/siddarthasubedi1/Electro-ecommerce/models"
	"gorm.io/gorm"
)

// UpdateProduct applies partial updates to a product. Empty form fields
// leave the stored value untouched. Admin only.
func UpdateProduct(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.Preload("Categories").Preload("Tags").First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("price"); v != "" {
			price, err := decimal.NewFromString(v)
			if err != nil || price.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			product.Price = price
		}
		if v := c.PostForm("old_price"); v != "" {
			oldPrice, err := decimal.NewFromString(v)
			if err != nil || oldPrice.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid old_price"})
				return
			}
			product.OldPrice = oldPrice
		}
		for form, flag := range map[string]*bool{
			"all_products": &product.AllProducts,
			"featured":     &product.Featured,
			"new_arrivals": &product.NewArrivals,
			"top_selling":  &product.TopSelling,
		} {
			if v := c.PostForm(form); v != "" {
				*flag = v == "true"
			}
		}

		if file, err := c.FormFile("image"); err == nil {
			imageURL, err := saveProductImage(c, cfg, file.Filename)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			product.Image = imageURL
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if v, present := c.GetPostForm("category_ids"); present {
				categories, err := fetchCategories(tx, v)
				if err != nil {
					return err
				}
				if err := tx.Model(&product).Association("Categories").Replace(categories); err != nil {
					return err
				}
			}
			if v, present := c.GetPostForm("tag_ids"); present {
				tags, err := fetchTags(tx, v)
				if err != nil {
					return err
				}
				if err := tx.Model(&product).Association("Tags").Replace(tags); err != nil {
					return err
				}
			}
			return tx.Save(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
