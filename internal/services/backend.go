package services

import (
	"context"

	"github.com/caffeinepub/cupcakemc/internal/model"
)

// Backend is the remote service interface the services consume. Implemented
// by *backend.Client; tests substitute fakes.
type Backend interface {
	GetAllShopItems(ctx context.Context) ([]model.ShopItem, error)
	GetShopItemsByCategory(ctx context.Context, category model.Category) ([]model.ShopItem, error)
	GetCart(ctx context.Context) ([]model.CartItem, error)
	GetPurchaseHistory(ctx context.Context) ([]model.PurchaseRecord, error)
	GetAllOrders(ctx context.Context) ([]model.OrderDetails, error)
	GetWebsiteConfig(ctx context.Context) (model.WebsiteConfig, error)
	GetUPIConfig(ctx context.Context) (model.UPIConfig, error)
	GetCallerUserProfile(ctx context.Context) (*model.UserProfile, error)
	IsCallerAdmin(ctx context.Context) (bool, error)

	AddShopItem(ctx context.Context, item model.NewShopItem) (int64, error)
	EditShopItem(ctx context.Context, item model.ShopItem) error
	DeleteShopItem(ctx context.Context, id int64) error
	AddToCart(ctx context.Context, itemID, quantity int64) error
	ClearCart(ctx context.Context) error
	CompletePurchaseWithUPI(ctx context.Context, minecraftUsername, discordUsername string) error
	ApproveOrder(ctx context.Context, user string, orderID int64) error
	SaveCallerUserProfile(ctx context.Context, profile model.UserProfile) error
	UpdateWebsiteConfig(ctx context.Context, cfg model.WebsiteConfig) error
	UpdateUPIConfig(ctx context.Context, upiID, merchantName string) error
}
