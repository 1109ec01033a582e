package services

import (
	"time"

	"github.com/caffeinepub/cupcakemc/internal/cache"
	"github.com/caffeinepub/cupcakemc/internal/model"
)

// Cache keys. Identity-scoped keys embed the canonical principal string so
// two identities can never observe each other's entries; logout additionally
// clears the whole store.
const (
	keyShopItems     = "shopItems"
	keyWebsiteConfig = "websiteConfig"
	keyUPIConfig     = "upiConfig"
	keyAllOrders     = "allOrders"
)

func categoryKey(c model.Category) string { return keyShopItems + "/" + string(c) }
func cartKey(principal string) string     { return "cart/" + principal }
func historyKey(principal string) string  { return "purchaseHistory/" + principal }
func profileKey(principal string) string  { return "profile/" + principal }
func adminKey(principal string) string    { return "isAdmin/" + principal }

// Freshness windows per key family. Reads default to one retry after 500ms;
// the UPI config read is retried harder because the payment step depends on
// it.
var (
	shopItemsOpts = cache.Options{
		Enabled:        true,
		StaleTime:      15 * time.Minute,
		CacheRetention: 30 * time.Minute,
		RetryCount:     1,
		RetryDelay:     500 * time.Millisecond,
	}
	websiteConfigOpts = cache.Options{
		Enabled:        true,
		StaleTime:      30 * time.Minute,
		CacheRetention: time.Hour,
		RetryCount:     1,
		RetryDelay:     500 * time.Millisecond,
	}
	allOrdersOpts = cache.Options{
		Enabled:        true,
		StaleTime:      5 * time.Minute,
		CacheRetention: 15 * time.Minute,
		RetryCount:     1,
		RetryDelay:     500 * time.Millisecond,
	}
)

func upiConfigOpts(authenticated bool) cache.Options {
	return cache.Options{
		Enabled:        authenticated,
		StaleTime:      30 * time.Minute,
		CacheRetention: time.Hour,
		RetryCount:     2,
		RetryDelay:     500 * time.Millisecond,
	}
}

func identityScopedOpts(authenticated bool) cache.Options {
	return cache.Options{
		Enabled:        authenticated,
		StaleTime:      5 * time.Minute,
		CacheRetention: 15 * time.Minute,
		RetryCount:     1,
		RetryDelay:     500 * time.Millisecond,
	}
}

func adminCheckOpts(authenticated bool) cache.Options {
	return cache.Options{
		Enabled:        authenticated,
		StaleTime:      10 * time.Minute,
		CacheRetention: 30 * time.Minute,
		RetryCount:     1,
		RetryDelay:     500 * time.Millisecond,
	}
}
