package services

import (
	"context"

	"github.com/caffeinepub/cupcakemc/internal/cache"
	"github.com/caffeinepub/cupcakemc/internal/model"
)

// OrderService serves purchase history, the admin order list, and the two
// purchase mutations.
type OrderService struct {
	Backend Backend
	Cache   *cache.Store
}

func NewOrderService(b Backend, c *cache.Store) *OrderService {
	return &OrderService{Backend: b, Cache: c}
}

func (s *OrderService) History(ctx context.Context, principal string) ([]model.PurchaseRecord, error) {
	records, err := cache.Fetch(ctx, s.Cache, historyKey(principal), s.Backend.GetPurchaseHistory, identityScopedOpts(principal != ""))
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []model.PurchaseRecord{}
	}
	return records, nil
}

// AllOrders is the privileged admin list.
func (s *OrderService) AllOrders(ctx context.Context) ([]model.OrderDetails, error) {
	orders, err := cache.Fetch(ctx, s.Cache, keyAllOrders, s.Backend.GetAllOrders, allOrdersOpts)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []model.OrderDetails{}
	}
	return orders, nil
}

// CompletePurchase is the checkout completion mutation. On success the cart,
// the buyer's history and the admin order list are all invalidated, so the
// next read of any of them reflects the new unapproved record.
func (s *OrderService) CompletePurchase(ctx context.Context, principal, minecraftUsername, discordUsername string) error {
	return cache.Mutate(ctx, s.Cache, func(ctx context.Context) error {
		return s.Backend.CompletePurchaseWithUPI(ctx, minecraftUsername, discordUsername)
	}, cartKey(principal), historyKey(principal), keyAllOrders)
}

// Approve flips an order unapproved -> approved. One-way; admin only.
func (s *OrderService) Approve(ctx context.Context, user string, orderID int64) error {
	return cache.Mutate(ctx, s.Cache, func(ctx context.Context) error {
		return s.Backend.ApproveOrder(ctx, user, orderID)
	}, keyAllOrders, "purchaseHistory")
}
