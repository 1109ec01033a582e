package checkout

import (
	"fmt"
	"net/url"

	"github.com/caffeinepub/cupcakemc/internal/model"
)

// Currency is fixed: UPI settles in INR.
const Currency = "INR"

// PaymentURI builds the deterministic UPI deep link encoded into the QR code.
// The amount is rendered in major units with exactly two decimals, recomputed
// from integer minor units on every call.
func PaymentURI(cfg model.UPIConfig, totalMinor int64) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%s&cu=%s",
		cfg.UPIID,
		url.QueryEscape(cfg.MerchantName),
		model.FormatAmount(totalMinor),
		Currency,
	)
}
