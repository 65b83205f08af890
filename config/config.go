package config

import (
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

// Config holds every tunable the handlers need. It is built once in main
// and passed down explicitly instead of being read from the environment
// at call sites.
type Config struct {
	Port        string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	JWTSecret   string
	AdminAPIKey string
	UploadsDir  string

	// Storefront rules
	PageSize    int             // products per shop page
	TaxRate     decimal.Decimal // flat rate applied to the cart subtotal
	MinQuantity int             // lowest quantity a cart line item may hold
	MaxQuantity int             // highest quantity a cart line item may hold
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      getEnv("DB_NAME", "electro"),
		JWTSecret:   getEnv("JWT_SECRET", "supersecret"),
		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
		UploadsDir:  getEnv("UPLOADS_DIR", "./uploads"),
		PageSize:    getEnvInt("PAGE_SIZE", 8),
		TaxRate:     getEnvDecimal("TAX_RATE", "0.13"),
		MinQuantity: 1,
		MaxQuantity: 99,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnvDecimal(key, fallback string) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return decimal.RequireFromString(fallback)
}
