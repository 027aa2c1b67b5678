package models

// Urgency tiers derived from the remaining-stock ratio.
const (
	UrgencySoldOut    = "Sold Out"
	UrgencyAlmostGone = "Almost Gone"
	UrgencyLowStock   = "Low Stock"
	UrgencyInStock    = "In Stock"
)

const (
	almostGonePercent = 10
	lowStockPercent   = 30
)

// StockUrgency classifies remaining stock. Zero remaining is always Sold Out
// regardless of the original allocation; boundary percentages fall into the
// more urgent tier.
func StockUrgency(remaining, original int) string {
	if remaining <= 0 {
		return UrgencySoldOut
	}
	if original <= 0 {
		return UrgencyInStock
	}

	percent := float64(remaining) / float64(original) * 100
	switch {
	case percent <= almostGonePercent:
		return UrgencyAlmostGone
	case percent <= lowStockPercent:
		return UrgencyLowStock
	default:
		return UrgencyInStock
	}
}

// FlashSaleItem is the listing projection of a flash-sale deal: the deal plus
// its computed urgency tier and countdown.
type FlashSaleItem struct {
	Deal
	Urgency  string   `json:"urgency"`
	TimeLeft TimeLeft `json:"time_left"`
}
