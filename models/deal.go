package models

import "time"

// Deal is a product offered at a discounted price for a bounded time window.
// Flash-sale deals additionally track a finite stock allocation; the order
// system owns the authoritative counts, this service only projects them.
type Deal struct {
	ID              int       `json:"id"`
	ProductID       int       `json:"product_id"`
	ProductName     string    `json:"product_name"`
	Category        string    `json:"category"`
	ImageURL        string    `json:"image_url"`
	OriginalPrice   int       `json:"original_price"`
	DealPrice       int       `json:"deal_price"`
	DiscountPercent int       `json:"discount_percent"`
	EndDate         time.Time `json:"end_date"`
	IsFlashSale     bool      `json:"is_flash_sale"`
	OriginalStock   int       `json:"original_stock"`
	RemainingStock  int       `json:"remaining_stock"`
	SoldCount       int       `json:"sold_count"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (d *Deal) ExpiredAt(now time.Time) bool {
	return !d.EndDate.After(now)
}

func (d *Deal) SoldOut() bool {
	return d.IsFlashSale && d.RemainingStock == 0
}

// StockRatio is remaining/original, used by the "stock-low" sort. Non-flash
// deals report 1 so they sink below constrained items.
func (d *Deal) StockRatio() float64 {
	if !d.IsFlashSale || d.OriginalStock <= 0 {
		return 1
	}
	return float64(d.RemainingStock) / float64(d.OriginalStock)
}

// Sort keys accepted by the deal and flash-sale list endpoints.
const (
	SortEndingSoon   = "ending-soon"
	SortDiscountHigh = "discount-high"
	SortDiscountLow  = "discount-low"
	SortPriceLow     = "price-low"
	SortPriceHigh    = "price-high"
	SortStockLow     = "stock-low"
	SortPopular      = "popular"
)

// DealFilter is the AND-combined filter spec for deal listings. Zero values
// ("", 0) and the "all" sentinel disable the corresponding predicate.
type DealFilter struct {
	Category       string `json:"category" form:"category"`
	MinDiscount    int    `json:"min_discount" form:"min_discount"`
	ExpiringIn     string `json:"expiring_in" form:"expiring_in"`
	IncludeSoldOut bool   `json:"include_sold_out" form:"include_sold_out"`
}

// ExpiryBuckets maps the expiring-in filter values to their window.
var ExpiryBuckets = map[string]time.Duration{
	"1h":  time.Hour,
	"6h":  6 * time.Hour,
	"24h": 24 * time.Hour,
	"3d":  72 * time.Hour,
	"7d":  168 * time.Hour,
}
