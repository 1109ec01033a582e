package model

// CartItem is a shop item plus a positive quantity. The cart itself is
// server-owned; the client only ever holds a cached copy.
type CartItem struct {
	ShopItem ShopItem `json:"shopItem"`
	Quantity int64    `json:"quantity"`
}

// CartResponse is returned by GET /api/cart.
type CartResponse struct {
	Items      []CartItem `json:"items"`
	TotalMinor int64      `json:"totalMinor"`
	Total      string     `json:"total"`
}
