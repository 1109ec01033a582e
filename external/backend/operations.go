package backend

import (
	"context"

	"github.com/caffeinepub/cupcakemc/internal/model"
)

// Read operations.

func (c *Client) GetAllShopItems(ctx context.Context) ([]model.ShopItem, error) {
	var items []model.ShopItem
	if err := c.call(ctx, "getAllShopItems", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) GetShopItemsByCategory(ctx context.Context, category model.Category) ([]model.ShopItem, error) {
	params := map[string]any{"category": category}
	var items []model.ShopItem
	if err := c.call(ctx, "getShopItemsByCategory", params, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) GetCart(ctx context.Context) ([]model.CartItem, error) {
	var items []model.CartItem
	if err := c.call(ctx, "getCart", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) GetPurchaseHistory(ctx context.Context) ([]model.PurchaseRecord, error) {
	var records []model.PurchaseRecord
	if err := c.call(ctx, "getPurchaseHistory", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) GetAllOrders(ctx context.Context) ([]model.OrderDetails, error) {
	var orders []model.OrderDetails
	if err := c.call(ctx, "getAllOrders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetWebsiteConfig(ctx context.Context) (model.WebsiteConfig, error) {
	var cfg model.WebsiteConfig
	if err := c.call(ctx, "getWebsiteConfig", nil, &cfg); err != nil {
		return model.WebsiteConfig{}, err
	}
	return cfg, nil
}

func (c *Client) GetUPIConfig(ctx context.Context) (model.UPIConfig, error) {
	var cfg model.UPIConfig
	if err := c.call(ctx, "getUPIConfig", nil, &cfg); err != nil {
		return model.UPIConfig{}, err
	}
	return cfg, nil
}

// GetCallerUserProfile returns nil when the identity has no profile yet.
func (c *Client) GetCallerUserProfile(ctx context.Context) (*model.UserProfile, error) {
	var profile *model.UserProfile
	if err := c.call(ctx, "getCallerUserProfile", nil, &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (c *Client) IsCallerAdmin(ctx context.Context) (bool, error) {
	var isAdmin bool
	if err := c.call(ctx, "isCallerAdmin", nil, &isAdmin); err != nil {
		return false, err
	}
	return isAdmin, nil
}

// Write operations. None of these are retried by any layer above.

func (c *Client) AddShopItem(ctx context.Context, item model.NewShopItem) (int64, error) {
	var id int64
	if err := c.call(ctx, "addShopItem", item, &id); err != nil {
		return 0, err
	}
	return id, nil
}

func (c *Client) EditShopItem(ctx context.Context, item model.ShopItem) error {
	return c.call(ctx, "editShopItem", item, nil)
}

func (c *Client) DeleteShopItem(ctx context.Context, id int64) error {
	return c.call(ctx, "deleteShopItem", map[string]any{"id": id}, nil)
}

func (c *Client) AddToCart(ctx context.Context, itemID, quantity int64) error {
	params := map[string]any{"itemId": itemID, "quantity": quantity}
	return c.call(ctx, "addToCart", params, nil)
}

func (c *Client) ClearCart(ctx context.Context) error {
	return c.call(ctx, "clearCart", nil, nil)
}

func (c *Client) CompletePurchaseWithUPI(ctx context.Context, minecraftUsername, discordUsername string) error {
	params := map[string]any{
		"minecraftUsername": minecraftUsername,
		"discordUsername":   discordUsername,
	}
	return c.call(ctx, "completePurchaseWithUPI", params, nil)
}

func (c *Client) ApproveOrder(ctx context.Context, user string, orderID int64) error {
	params := map[string]any{"user": user, "orderId": orderID}
	return c.call(ctx, "approveOrder", params, nil)
}

func (c *Client) SaveCallerUserProfile(ctx context.Context, profile model.UserProfile) error {
	return c.call(ctx, "saveCallerUserProfile", profile, nil)
}

func (c *Client) UpdateWebsiteConfig(ctx context.Context, cfg model.WebsiteConfig) error {
	return c.call(ctx, "updateWebsiteConfig", cfg, nil)
}

func (c *Client) UpdateUPIConfig(ctx context.Context, upiID, merchantName string) error {
	params := map[string]any{"upiId": upiID, "merchantName": merchantName}
	return c.call(ctx, "updateUPIConfig", params, nil)
}
