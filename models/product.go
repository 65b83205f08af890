package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"size:50;not null" json:"name"`
	OldPrice    decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"old_price"`
	Price       decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"price"`
	Image       string          `json:"image"`
	Description string          `gorm:"type:text" json:"description"`

	// Homepage section flags, each independent of the others
	AllProducts bool `gorm:"default:false" json:"all_products"`
	Featured    bool `gorm:"default:false" json:"featured"`
	NewArrivals bool `gorm:"default:false" json:"new_arrivals"`
	TopSelling  bool `gorm:"default:false" json:"top_selling"`

	Categories []Category `gorm:"many2many:product_categories" json:"categories,omitempty"`
	Tags       []Tag      `gorm:"many2many:product_tags" json:"tags,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
