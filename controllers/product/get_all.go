package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/siddarthasubedi1/Electro-ecommerce/config"
	"github.com/siddarthasubedi1/Electro-ecommerce/models"
	"gorm.io/gorm"
)

const maxNameFilterLength = 60

// sortingOrders maps the sorting_key query values to ORDER BY clauses.
// Anything else keeps the default recency ordering.
var sortingOrders = map[string]string{
	"price_asc": "price asc",
	"price_dec": "price desc",
	"latest":    "created_at desc",
	"oldest":    "created_at asc",
}

// productFilter holds the query parameters that survived validation.
// Invalid individual values are dropped, never fatal to the request.
type productFilter struct {
	Name        string
	CategoryIDs []uint
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	SortingKey  string
}

// Applied reports whether any filter or sort narrowed the request. It
// separates "filters matched nothing" from "no filters, store is empty".
func (f *productFilter) Applied() bool {
	return f.Name != "" || len(f.CategoryIDs) > 0 || f.MinPrice != nil || f.MaxPrice != nil || f.SortingKey != ""
}

func parseProductFilter(c *gin.Context) *productFilter {
	f := &productFilter{}

	// The header search bar submits `search`, the filter form submits `name`;
	// the form value wins when both are present.
	name := c.Query("name")
	if name == "" {
		name = c.Query("search")
	}
	if len(name) <= maxNameFilterLength {
		f.Name = strings.TrimSpace(name)
	}

	for _, tok := range c.QueryArray("categories") {
		if id, err := strconv.ParseUint(tok, 10, 64); err == nil {
			f.CategoryIDs = append(f.CategoryIDs, uint(id))
		}
	}

	f.MinPrice = parsePriceBound(c.Query("min_price"))
	f.MaxPrice = parsePriceBound(c.Query("max_price"))

	if key := c.Query("sorting_key"); key != "" {
		if _, ok := sortingOrders[key]; ok {
			f.SortingKey = key
		}
	}

	return f
}

func parsePriceBound(raw string) *decimal.Decimal {
	if raw == "" {
		return nil
	}
	bound, err := decimal.NewFromString(raw)
	if err != nil || bound.IsNegative() {
		return nil
	}
	return &bound
}

// GET /shop
//
// Filters, sorts and paginates the catalog. The response carries the page of
// products, the page count, a no-results flag and the IDs of products already
// in the caller's cart.
func GetProducts(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := parseProductFilter(c)

		query := db.Model(&models.Product{}).Preload("Categories")

		if filter.Name != "" {
			query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
		}
		if len(filter.CategoryIDs) > 0 {
			// IN-subquery keeps each product distinct even when it belongs
			// to several of the selected categories
			query = query.Where("products.id IN (?)",
				db.Table("product_categories").
					Select("product_id").
					Where("category_id IN ?", filter.CategoryIDs))
		}
		if filter.MinPrice != nil {
			query = query.Where("price >= ?", *filter.MinPrice)
		}
		if filter.MaxPrice != nil {
			query = query.Where("price <= ?", *filter.MaxPrice)
		}

		order := "created_at desc"
		if clause, ok := sortingOrders[filter.SortingKey]; ok {
			order = clause
		}
		query = query.Order(order)

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		noResults := filter.Applied() && total == 0

		pageCount := int((total + int64(cfg.PageSize) - 1) / int64(cfg.PageSize))
		if pageCount < 1 {
			pageCount = 1
		}

		// Out-of-range or unparseable page numbers resolve to the nearest
		// valid page instead of erroring.
		page, err := strconv.Atoi(c.Query("page"))
		if err != nil || page < 1 {
			page = 1
		} else if page > pageCount {
			page = pageCount
		}

		var products []models.Product
		if err := query.
			Offset((page - 1) * cfg.PageSize).
			Limit(cfg.PageSize).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products":         products,
			"page":             page,
			"page_count":       pageCount,
			"no_results":       noResults,
			"cart_product_ids": cartProductIDs(db, c),
		})
	}
}
