package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quantity bounds for a single cart line item.
const (
	MinQuantity = 1
	MaxQuantity = 99
)

type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    string     `gorm:"uniqueIndex;not null" json:"user_id"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CartID    uint      `gorm:"index;not null;uniqueIndex:idx_cart_item_product" json:"cart_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_item_product" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// ClampQuantity forces a requested quantity into [MinQuantity, MaxQuantity].
func ClampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

// LineTotal is quantity × unit price, computed in decimal.
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
