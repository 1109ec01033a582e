package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	for _, tc := range []struct {
		minor int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{99, "0.99"},
		{100, "1.00"},
		{551, "5.51"},
		{1999, "19.99"},
		{120050, "1200.50"},
		{-551, "-5.51"},
	} {
		assert.Equal(t, tc.want, FormatAmount(tc.minor), "minor=%d", tc.minor)
	}
}

func TestCartTotalMinor(t *testing.T) {
	items := []CartItem{
		{ShopItem: ShopItem{ID: 1, Price: 150}, Quantity: 2},
		{ShopItem: ShopItem{ID: 2, Price: 251}, Quantity: 1},
	}
	assert.Equal(t, int64(551), CartTotalMinor(items))
	assert.Equal(t, "5.51", FormatAmount(CartTotalMinor(items)))

	// order independence
	reversed := []CartItem{items[1], items[0]}
	assert.Equal(t, CartTotalMinor(items), CartTotalMinor(reversed))

	assert.Equal(t, int64(0), CartTotalMinor(nil))
}
