package model

import "time"

// PurchaseStatus is the one-way order status: unapproved until an admin
// approves delivery.
type PurchaseStatus string

const (
	StatusUnapproved PurchaseStatus = "unapproved"
	StatusApproved   PurchaseStatus = "approved"
)

// PurchaseRecord is an immutable snapshot of a completed checkout as seen by
// the buyer. Only the status may change, and only unapproved -> approved.
type PurchaseRecord struct {
	Items             []CartItem     `json:"items"`
	TotalAmount       int64          `json:"totalAmount"`
	MinecraftUsername string         `json:"minecraftUsername"`
	DiscordUsername   string         `json:"discordUsername"`
	Status            PurchaseStatus `json:"status"`
	Timestamp         time.Time      `json:"timestamp"`
}

// OrderDetails is the admin view of a purchase: the record plus who bought it.
type OrderDetails struct {
	OrderID           int64          `json:"orderId"`
	Purchaser         string         `json:"purchaser"`
	IdentityName      string         `json:"identityName"`
	Items             []CartItem     `json:"items"`
	TotalAmount       int64          `json:"totalAmount"`
	MinecraftUsername string         `json:"minecraftUsername"`
	DiscordUsername   string         `json:"discordUsername"`
	Status            PurchaseStatus `json:"status"`
	Timestamp         time.Time      `json:"timestamp"`
}
