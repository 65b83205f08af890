package productcontroller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/siddarthasubedi1/Electro-ecommerce/auth"
	"github.com/siddarthasubedi1/Electro-ecommerce/config"
	"github.com/siddarthasubedi1/Electro-ecommerce/middleware"
	"github.com/siddarthasubedi1/Electro-ecommerce/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:   "testsecret",
		PageSize:    2,
		TaxRate:     decimal.RequireFromString("0.13"),
		MinQuantity: 1,
		MaxQuantity: 99,
	}
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Tag{},
		&models.Product{}, &models.Cart{}, &models.CartItem{},
	))
	return db
}

func setupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := r.Group("/")
	store.Use(middleware.OptionalToken(cfg.JWTSecret))
	{
		store.GET("", Home(db))
		store.GET("/shop", GetProducts(db, cfg))
		store.GET("/bestseller", Bestseller(db))
		store.GET("/products/:id", GetProductByID(db))
	}
	return r
}

type shopResponse struct {
	Products       []models.Product `json:"products"`
	Page           int              `json:"page"`
	PageCount      int              `json:"page_count"`
	NoResults      bool             `json:"no_results"`
	CartProductIDs []uint           `json:"cart_product_ids"`
}

// seedCatalog inserts three categories and five products with staggered
// creation times (electronics: phone+case+bag, clothing: bag+shirt, books:
// novel) and returns them keyed by name.
func seedCatalog(t *testing.T, db *gorm.DB) (map[string]models.Category, map[string]models.Product) {
	t.Helper()

	categories := map[string]models.Category{}
	for _, name := range []string{"Electronics", "Clothing", "Books"} {
		cat := models.Category{Name: name}
		require.NoError(t, db.Create(&cat).Error)
		categories[name] = cat
	}

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rows := []struct {
		name       string
		price      string
		cats       []string
		topSelling bool
	}{
		{"iPhone 12", "999.99", []string{"Electronics"}, true},
		{"Laptop Bag", "49.99", []string{"Electronics", "Clothing"}, false},
		{"T-Shirt", "15.00", []string{"Clothing"}, false},
		{"Novel", "10.00", []string{"Books"}, false},
		{"Phone Case", "12.50", []string{"Electronics"}, true},
	}

	products := map[string]models.Product{}
	for i, row := range rows {
		var cats []models.Category
		for _, cn := range row.cats {
			cats = append(cats, categories[cn])
		}
		p := models.Product{
			Name:       row.name,
			Price:      decimal.RequireFromString(row.price),
			Categories: cats,
			TopSelling: row.topSelling,
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, db.Create(&p).Error)
		products[row.name] = p
	}
	return categories, products
}

func getShop(t *testing.T, router *gin.Engine, query string, token string) shopResponse {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/shop"+query, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp shopResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func productNames(products []models.Product) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return names
}

func TestShopDefaultOrderAndPagination(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	router := setupRouter(db, testConfig())

	resp := getShop(t, router, "", "")
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 3, resp.PageCount) // ceil(5 / 2)
	assert.False(t, resp.NoResults)
	// newest first
	assert.Equal(t, []string{"Phone Case", "Novel"}, productNames(resp.Products))
}

func TestShopPaginationCoversSetExactlyOnce(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	router := setupRouter(db, testConfig())

	seen := map[uint]int{}
	first := getShop(t, router, "", "")
	for page := 1; page <= first.PageCount; page++ {
		resp := getShop(t, router, fmt.Sprintf("?page=%d", page), "")
		for _, p := range resp.Products {
			seen[p.ID]++
		}
	}

	assert.Len(t, seen, 5)
	for id, count := range seen {
		assert.Equal(t, 1, count, "product %d appeared %d times", id, count)
	}
}

func TestShopPageOutOfRangeClampsToLastPage(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	router := setupRouter(db, testConfig())

	resp := getShop(t, router, "?page=99", "")
	assert.Equal(t, 3, resp.Page)
	assert.Len(t, resp.Products, 1) // 5 products, page size 2

	resp = getShop(t, router, "?page=-4", "")
	assert.Equal(t, 1, resp.Page)
}

func TestShopNameFilterIsCaseInsensitiveSubstring(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	router := setupRouter(db, testConfig())

	resp := getShop(t, router, "?name=PHONE", "")
	assert.ElementsMatch(t, []string{"iPhone 12", "Phone Case"}, productNames(resp.Products))

	// The header search bar submits `search` instead of `name`
	resp = getShop(t, router, "?search=phone", "")
	assert.Len(t, resp.Products, 2)
}

func TestShopCategoryFilterDeduplicates(t *testing.T) {
	db := setupTestDB(t)
	categories, _ := seedCatalog(t, db)
	router := setupRouter(db, testConfig())

	query := fmt.Sprintf("?categories=%d&categories=%d",
		categories["Electronics"].ID, categories["Clothing"].ID)

	first := getShop(t, router, query, "")
	assert.Equal(t, 2, first.PageCount) // 4 distinct products

	seen := map[uint]int{}
	for page := 1; page <= first.PageCount; page++ {
		resp := getShop(t, router, fmt.Sprintf("%s&page=%d", query, page), "")
		for _, p := range resp.Products {
			seen[p.ID]++
		}
	}
	// Laptop Bag sits in both categories but must appear once
	assert.Len(t, seen, 4)
	for _, count := range seen {
		assert.Equal(t, 1, count)
	}
}

func TestShopPriceBoundsComposeAndAreIdempotent(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	router := setupRouter(db, testConfig())

	resp := getShop(t, router, "?min_price=12&max_price=50&page=1", "")
	assert.Equal(t, 2, resp.PageCount)

	var names []string
	for page := 1; page <= resp.PageCount; page++ {
		r := getShop(t, router, fmt.Sprintf("?min_price=12&max_price=50&page=%d", page), "")
		names = append(names, productNames(r.Products)...)
	}
	assert.ElementsMatch(t, []string{"Laptop Bag", "T-Shirt", "Phone Case"}, names)

	// Asking again with the same bounds returns the same set
	again := getShop(t, router, "?min_price=12&max_price=50", "")
	assert.Equal(t, resp.PageCount, again.PageCount)
	assert.Equal(t, productNames(resp.Products), productNames(again.Products))
}

func TestShopSortingKeys(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	router := setupRouter(db, testConfig())

	cases := map[string]string{
		"price_asc": "Novel",     // 10.00 is cheapest
		"price_dec": "iPhone 12", // 999.99 is dearest
		"latest":    "Phone Case",
		"oldest":    "iPhone 12",
	}
	for key, wantFirst := range cases {
		resp := getShop(t, router, "?sorting_key="+key, "")
		require.NotEmpty(t, resp.Products, key)
		assert.Equal(t, wantFirst, resp.Products[0].Name, "sorting_key=%s", key)
	}
}

func TestShopInvalidParametersAreDropped(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	router := setupRouter(db, testConfig())

	resp := getShop(t, router, "?min_price=abc&max_price=-3&sorting_key=bogus&categories=xyz&page=soon", "")
	assert.False(t, resp.NoResults)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 3, resp.PageCount) // behaves exactly like an unfiltered request
}

func TestShopNoResultsFlag(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db, testConfig())

	// Empty store without filters is not a "no results" condition
	resp := getShop(t, router, "", "")
	assert.False(t, resp.NoResults)
	assert.Equal(t, 1, resp.PageCount)

	seedCatalog(t, db)
	resp = getShop(t, router, "?name=zzzzz", "")
	assert.True(t, resp.NoResults)
	assert.Empty(t, resp.Products)
}

func TestShopCartProductIDs(t *testing.T) {
	db := setupTestDB(t)
	_, products := seedCatalog(t, db)
	cfg := testConfig()
	router := setupRouter(db, cfg)

	user, err := models.NewUser("shopper@example.com", "Secret123", "Sam", "Shopper")
	require.NoError(t, err)
	require.NoError(t, db.Create(user).Error)

	cart := models.Cart{UserID: user.ID}
	require.NoError(t, db.Create(&cart).Error)
	require.NoError(t, db.Create(&models.CartItem{
		CartID:    cart.ID,
		ProductID: products["Novel"].ID,
		Quantity:  1,
		AddedAt:   time.Now(),
	}).Error)

	// Anonymous request gets an empty list
	resp := getShop(t, router, "", "")
	assert.Empty(t, resp.CartProductIDs)

	token, err := auth.IssueToken(user.ID, cfg.JWTSecret)
	require.NoError(t, err)

	resp = getShop(t, router, "", token)
	assert.Equal(t, []uint{products["Novel"].ID}, resp.CartProductIDs)
}

func TestBestsellerReturnsTopSellingOnly(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	router := setupRouter(db, testConfig())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/bestseller", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Products []models.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.ElementsMatch(t, []string{"iPhone 12", "Phone Case"}, productNames(resp.Products))
}

func TestProductDetail(t *testing.T) {
	db := setupTestDB(t)
	_, products := seedCatalog(t, db)
	router := setupRouter(db, testConfig())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", fmt.Sprintf("/products/%d", products["Novel"].ID), nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Product models.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Novel", resp.Product.Name)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/products/99999", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
