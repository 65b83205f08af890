package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClampQuantity(t *testing.T) {
	assert.Equal(t, 1, ClampQuantity(0))
	assert.Equal(t, 1, ClampQuantity(-5))
	assert.Equal(t, 1, ClampQuantity(1))
	assert.Equal(t, 42, ClampQuantity(42))
	assert.Equal(t, 99, ClampQuantity(99))
	assert.Equal(t, 99, ClampQuantity(100))
}

func TestLineTotal(t *testing.T) {
	item := CartItem{
		Quantity: 3,
		Product:  Product{Price: decimal.RequireFromString("19.99")},
	}
	assert.True(t, item.LineTotal().Equal(decimal.RequireFromString("59.97")))

	item.Quantity = 1
	assert.True(t, item.LineTotal().Equal(decimal.RequireFromString("19.99")))
}
