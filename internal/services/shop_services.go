package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/caffeinepub/cupcakemc/internal/cache"
	"github.com/caffeinepub/cupcakemc/internal/model"
)

var ErrItemNotFound = errors.New("shop item not found")

// ShopService serves the catalog screens and the admin item CRUD.
type ShopService struct {
	Backend Backend
	Cache   *cache.Store
}

func NewShopService(b Backend, c *cache.Store) *ShopService {
	return &ShopService{Backend: b, Cache: c}
}

func (s *ShopService) AllItems(ctx context.Context) ([]model.ShopItem, error) {
	return cache.Fetch(ctx, s.Cache, keyShopItems, s.Backend.GetAllShopItems, shopItemsOpts)
}

func (s *ShopService) ItemsByCategory(ctx context.Context, category model.Category) ([]model.ShopItem, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("invalid category %q", category)
	}
	return cache.Fetch(ctx, s.Cache, categoryKey(category), func(ctx context.Context) ([]model.ShopItem, error) {
		return s.Backend.GetShopItemsByCategory(ctx, category)
	}, shopItemsOpts)
}

// Item resolves the detail page from the cached catalog.
func (s *ShopService) Item(ctx context.Context, id int64) (model.ShopItem, error) {
	items, err := s.AllItems(ctx)
	if err != nil {
		return model.ShopItem{}, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return model.ShopItem{}, ErrItemNotFound
}

func validateItem(name string, price int64, category model.Category) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("item name is required")
	}
	if price <= 0 {
		return errors.New("item price must be positive")
	}
	if !category.Valid() {
		return fmt.Errorf("invalid category %q", category)
	}
	return nil
}

// Add creates a shop item and invalidates the catalog. Admin only; the
// backend enforces authorization, validation never leaves the client.
func (s *ShopService) Add(ctx context.Context, item model.NewShopItem) (int64, error) {
	if err := validateItem(item.Name, item.Price, item.Category); err != nil {
		return 0, err
	}
	return cache.MutateValue(ctx, s.Cache, func(ctx context.Context) (int64, error) {
		return s.Backend.AddShopItem(ctx, item)
	}, keyShopItems)
}

func (s *ShopService) Edit(ctx context.Context, item model.ShopItem) error {
	if err := validateItem(item.Name, item.Price, item.Category); err != nil {
		return err
	}
	return cache.Mutate(ctx, s.Cache, func(ctx context.Context) error {
		return s.Backend.EditShopItem(ctx, item)
	}, keyShopItems)
}

func (s *ShopService) Delete(ctx context.Context, id int64) error {
	return cache.Mutate(ctx, s.Cache, func(ctx context.Context) error {
		return s.Backend.DeleteShopItem(ctx, id)
	}, keyShopItems)
}
