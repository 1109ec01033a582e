package services

import (
	"context"
	"errors"

	"github.com/caffeinepub/cupcakemc/internal/cache"
	"github.com/caffeinepub/cupcakemc/internal/model"
)

// CartService serves the authenticated caller's cart. Every method takes the
// canonical principal string so cache entries stay identity-scoped.
type CartService struct {
	Backend Backend
	Cache   *cache.Store
}

func NewCartService(b Backend, c *cache.Store) *CartService {
	return &CartService{Backend: b, Cache: c}
}

// Get returns the cart with its total recomputed from integer minor units.
// Anonymous callers get an empty cart with no remote call.
func (s *CartService) Get(ctx context.Context, principal string) (model.CartResponse, error) {
	items, err := cache.Fetch(ctx, s.Cache, cartKey(principal), s.Backend.GetCart, identityScopedOpts(principal != ""))
	if err != nil {
		return model.CartResponse{}, err
	}
	if items == nil {
		items = []model.CartItem{}
	}
	total := model.CartTotalMinor(items)
	return model.CartResponse{
		Items:      items,
		TotalMinor: total,
		Total:      model.FormatAmount(total),
	}, nil
}

func (s *CartService) Add(ctx context.Context, principal string, itemID, quantity int64) error {
	if quantity <= 0 {
		return errors.New("quantity must be positive")
	}
	return cache.Mutate(ctx, s.Cache, func(ctx context.Context) error {
		return s.Backend.AddToCart(ctx, itemID, quantity)
	}, cartKey(principal))
}

func (s *CartService) Clear(ctx context.Context, principal string) error {
	return cache.Mutate(ctx, s.Cache, func(ctx context.Context) error {
		return s.Backend.ClearCart(ctx)
	}, cartKey(principal))
}
