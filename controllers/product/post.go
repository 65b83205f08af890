package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/siddarthasubedi1/Electro-ecommerce/config"
	"github.com/siddarthasubedi1/Electro-ecommerce/models"
	"gorm.io/gorm"
)

// CreateProduct creates a new product with categories, tags and an optional
// image upload. Admin only.
func CreateProduct(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}

		price, err := decimal.NewFromString(priceStr)
		if err != nil || price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		oldPrice := decimal.Zero
		if s := c.PostForm("old_price"); s != "" {
			oldPrice, err = decimal.NewFromString(s)
			if err != nil || oldPrice.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid old_price"})
				return
			}
		}

		categories, err := fetchCategories(db, c.PostForm("category_ids"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		tags, err := fetchTags(db, c.PostForm("tag_ids"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var imageURL string
		if file, err := c.FormFile("image"); err == nil {
			imageURL, err = saveProductImage(c, cfg, file.Filename)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}

		product := models.Product{
			Name:        name,
			OldPrice:    oldPrice,
			Price:       price,
			Image:       imageURL,
			Description: c.PostForm("description"),
			AllProducts: c.PostForm("all_products") == "true",
			Featured:    c.PostForm("featured") == "true",
			NewArrivals: c.PostForm("new_arrivals") == "true",
			TopSelling:  c.PostForm("top_selling") == "true",
			Categories:  categories,
			Tags:        tags,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

func fetchCategories(db *gorm.DB, idsStr string) ([]models.Category, error) {
	ids, err := parseIDList(idsStr)
	if err != nil {
		return nil, fmt.Errorf("Invalid category_ids format")
	}
	if len(ids) == 0 {
		return nil, nil
	}
	var categories []models.Category
	if err := db.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("Failed to fetch categories")
	}
	return categories, nil
}

func fetchTags(db *gorm.DB, idsStr string) ([]models.Tag, error) {
	ids, err := parseIDList(idsStr)
	if err != nil {
		return nil, fmt.Errorf("Invalid tag_ids format")
	}
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []models.Tag
	if err := db.Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("Failed to fetch tags")
	}
	return tags, nil
}

func parseIDList(s string) ([]uint, error) {
	var ids []uint
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		id, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

func saveProductImage(c *gin.Context, cfg *config.Config, originalName string) (string, error) {
	saveDir := filepath.Join(cfg.UploadsDir, "products")
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("Failed to create upload folder")
	}

	ext := filepath.Ext(originalName)
	base := strings.TrimSuffix(filepath.Base(originalName), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

	file, err := c.FormFile("image")
	if err != nil {
		return "", fmt.Errorf("Failed to read image")
	}
	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", fmt.Errorf("Failed to save image")
	}

	return fmt.Sprintf("/uploads/products/%s", filename), nil
}
