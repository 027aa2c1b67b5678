package services

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"fabric-store/config"
	"fabric-store/libs"
	"fabric-store/models"
	"fabric-store/repositories"
)

var flashSaleRefreshes = promauto.NewCounter(prometheus.CounterOpts{
	Name: "fabric_store_flash_sale_refreshes_total",
	Help: "Flash-sale refresh cycles (periodic and manual).",
})

// FlashSaleService serves the flash-sale listing and owns the auto-refresh
// loop. Stock is never mutated here: a refresh drops the cached pages so the
// next read picks up whatever the order system wrote to the deals table.
type FlashSaleService struct {
	repo      *repositories.DealRepository
	deals     *DealService
	refresher *libs.AutoRefresher
}

func NewFlashSaleService(deals *DealService) *FlashSaleService {
	interval := 30 * time.Second
	if config.AppConfig != nil {
		interval = config.AppConfig.FlashSaleRefresh
	}

	s := &FlashSaleService{
		repo:  repositories.NewDealRepository(),
		deals: deals,
	}
	s.refresher = libs.NewAutoRefresher(interval, s.reload)
	return s
}

// Start launches the periodic refresh loop; it stops with ctx.
func (s *FlashSaleService) Start(ctx context.Context) {
	s.refresher.Start(ctx)
}

// Refresh is the manual refresh button: immediate reload with the minimum
// visible busy window applied.
func (s *FlashSaleService) Refresh(ctx context.Context) error {
	return s.refresher.Refresh(ctx)
}

func (s *FlashSaleService) LastRefreshed() time.Time {
	return s.refresher.LastRefreshed()
}

func (s *FlashSaleService) Refreshing() bool {
	return s.refresher.Refreshing()
}

func (s *FlashSaleService) reload(ctx context.Context) error {
	s.deals.InvalidateCache()
	flashSaleRefreshes.Inc()
	return nil
}

// ListFlashSales returns the filtered, sorted, paginated flash-sale page with
// urgency tiers and countdowns computed per item.
func (s *FlashSaleService) ListFlashSales(ctx context.Context, f models.DealFilter, sortKey string, page, limit int) ([]models.FlashSaleItem, models.PaginationMeta, error) {
	deals, err := s.repo.GetActiveDeals(ctx)
	if err != nil {
		return nil, models.PaginationMeta{}, err
	}

	flash := []models.Deal{}
	for _, d := range deals {
		if d.IsFlashSale {
			flash = append(flash, d)
		}
	}

	now := time.Now()
	filtered := FilterDeals(flash, f, now)
	sorted := SortDeals(filtered, sortKey)
	pageItems, meta := PaginateDeals(sorted, page, limit)

	items := make([]models.FlashSaleItem, 0, len(pageItems))
	for _, d := range pageItems {
		items = append(items, models.FlashSaleItem{
			Deal:     d,
			Urgency:  models.StockUrgency(d.RemainingStock, d.OriginalStock),
			TimeLeft: models.CalcTimeLeft(d.EndDate, now),
		})
	}
	return items, meta, nil
}
