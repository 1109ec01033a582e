package model

import "fmt"

// FormatAmount converts integer minor units (paise) to a two-decimal major
// unit string. Totals must always be recomputed from minor units; decimal
// strings are never summed, so no rounding error can accumulate.
func FormatAmount(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}

// CartTotalMinor sums the cart in integer minor units.
func CartTotalMinor(items []CartItem) int64 {
	var total int64
	for _, it := range items {
		total += it.ShopItem.Price * it.Quantity
	}
	return total
}
