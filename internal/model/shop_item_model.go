package model

// Category is the shop item category enum used by the backend.
type Category string

const (
	CategoryRank     Category = "Rank"
	CategoryCrateKey Category = "CrateKey"
	CategoryPerk     Category = "Perk"
)

// Categories lists every valid category, in display order.
var Categories = []Category{CategoryRank, CategoryCrateKey, CategoryPerk}

func (c Category) Valid() bool {
	switch c {
	case CategoryRank, CategoryCrateKey, CategoryPerk:
		return true
	}
	return false
}

// ShopItem is a purchasable store entry. Price is in integer minor units
// (paise); the backend rejects items with price <= 0.
type ShopItem struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Price       int64    `json:"price"`
	Available   bool     `json:"available"`
}

// NewShopItem is the payload for creating an item; the backend assigns the id.
type NewShopItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Price       int64    `json:"price"`
	Available   bool     `json:"available"`
}
