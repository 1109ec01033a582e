package services

import (
	"context"
	"sync"

	"github.com/caffeinepub/cupcakemc/internal/model"
)

// fakeBackend is an in-memory Backend recording calls per operation. Tests
// mutate its fields directly; counts verify which reads actually went remote.
type fakeBackend struct {
	mu     sync.Mutex
	counts map[string]int

	items   []model.ShopItem
	nextID  int64
	cart    []model.CartItem
	history []model.PurchaseRecord
	orders  []model.OrderDetails
	website model.WebsiteConfig
	upi     model.UPIConfig
	profile *model.UserProfile
	admin   bool

	err error // returned by every call when set
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{counts: make(map[string]int), nextID: 1}
}

func (f *fakeBackend) record(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[op]++
	return f.err
}

func (f *fakeBackend) calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[op]
}

func (f *fakeBackend) GetAllShopItems(ctx context.Context) ([]model.ShopItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts["getAllShopItems"]++
	if f.err != nil {
		return nil, f.err
	}
	return append([]model.ShopItem(nil), f.items...), nil
}

func (f *fakeBackend) GetShopItemsByCategory(ctx context.Context, category model.Category) ([]model.ShopItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts["getShopItemsByCategory"]++
	if f.err != nil {
		return nil, f.err
	}
	var out []model.ShopItem
	for _, it := range f.items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeBackend) GetCart(ctx context.Context) ([]model.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts["getCart"]++
	if f.err != nil {
		return nil, f.err
	}
	return append([]model.CartItem(nil), f.cart...), nil
}

func (f *fakeBackend) GetPurchaseHistory(ctx context.Context) ([]model.PurchaseRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts["getPurchaseHistory"]++
	if f.err != nil {
		return nil, f.err
	}
	return append([]model.PurchaseRecord(nil), f.history...), nil
}

func (f *fakeBackend) GetAllOrders(ctx context.Context) ([]model.OrderDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts["getAllOrders"]++
	if f.err != nil {
		return nil, f.err
	}
	return append([]model.OrderDetails(nil), f.orders...), nil
}

func (f *fakeBackend) GetWebsiteConfig(ctx context.Context) (model.WebsiteConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts["getWebsiteConfig"]++
	if f.err != nil {
		return model.WebsiteConfig{}, f.err
	}
	return f.website, nil
}

func (f *fakeBackend) GetUPIConfig(ctx context.Context) (model.UPIConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts["getUPIConfig"]++
	if f.err != nil {
		return model.UPIConfig{}, f.err
	}
	return f.upi, nil
}

func (f *fakeBackend) GetCallerUserProfile(ctx context.Context) (*model.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts["getCallerUserProfile"]++
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

func (f *fakeBackend) IsCallerAdmin(ctx context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts["isCallerAdmin"]++
	if f.err != nil {
		return false, f.err
	}
	return f.admin, nil
}

func (f *fakeBackend) AddShopItem(ctx context.Context, item model.NewShopItem) (int64, error) {
	if err := f.record("addShopItem"); err != nil {
		return 0, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.items = append(f.items, model.ShopItem{
		ID: id, Name: item.Name, Description: item.Description,
		Category: item.Category, Price: item.Price, Available: item.Available,
	})
	return id, nil
}

func (f *fakeBackend) EditShopItem(ctx context.Context, item model.ShopItem) error {
	if err := f.record("editShopItem"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == item.ID {
			f.items[i] = item
		}
	}
	return nil
}

func (f *fakeBackend) DeleteShopItem(ctx context.Context, id int64) error {
	if err := f.record("deleteShopItem"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.items[:0]
	for _, it := range f.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeBackend) AddToCart(ctx context.Context, itemID, quantity int64) error {
	if err := f.record("addToCart"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.items {
		if it.ID == itemID {
			f.cart = append(f.cart, model.CartItem{ShopItem: it, Quantity: quantity})
		}
	}
	return nil
}

func (f *fakeBackend) ClearCart(ctx context.Context) error {
	if err := f.record("clearCart"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cart = nil
	return nil
}

func (f *fakeBackend) CompletePurchaseWithUPI(ctx context.Context, minecraftUsername, discordUsername string) error {
	if err := f.record("completePurchaseWithUPI"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	rec := model.PurchaseRecord{
		Items:             f.cart,
		TotalAmount:       model.CartTotalMinor(f.cart),
		MinecraftUsername: minecraftUsername,
		DiscordUsername:   discordUsername,
		Status:            model.StatusUnapproved,
	}
	f.history = append(f.history, rec)
	f.orders = append(f.orders, model.OrderDetails{
		OrderID: int64(len(f.orders)), Purchaser: "caller",
		Items: rec.Items, TotalAmount: rec.TotalAmount,
		MinecraftUsername: rec.MinecraftUsername, DiscordUsername: rec.DiscordUsername,
		Status: rec.Status,
	})
	f.cart = nil
	return nil
}

func (f *fakeBackend) ApproveOrder(ctx context.Context, user string, orderID int64) error {
	if err := f.record("approveOrder"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.orders {
		if f.orders[i].OrderID == orderID {
			f.orders[i].Status = model.StatusApproved
		}
	}
	for i := range f.history {
		f.history[i].Status = model.StatusApproved
	}
	return nil
}

func (f *fakeBackend) SaveCallerUserProfile(ctx context.Context, profile model.UserProfile) error {
	if err := f.record("saveCallerUserProfile"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profile = &profile
	return nil
}

func (f *fakeBackend) UpdateWebsiteConfig(ctx context.Context, cfg model.WebsiteConfig) error {
	if err := f.record("updateWebsiteConfig"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.website = cfg
	return nil
}

func (f *fakeBackend) UpdateUPIConfig(ctx context.Context, upiID, merchantName string) error {
	if err := f.record("updateUPIConfig"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upi = model.UPIConfig{UPIID: upiID, MerchantName: merchantName}
	return nil
}
