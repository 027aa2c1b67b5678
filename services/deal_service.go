package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"fabric-store/config"
	"fabric-store/libs"
	"fabric-store/models"
	"fabric-store/repositories"
)

// FilterDeals applies the AND-combined predicates over the collection and
// returns a new slice; the source is never mutated. Expired deals are always
// dropped, sold-out flash items only when the filter hides them.
func FilterDeals(deals []models.Deal, f models.DealFilter, now time.Time) []models.Deal {
	out := []models.Deal{}
	for _, d := range deals {
		if d.ExpiredAt(now) {
			continue
		}
		if !f.IncludeSoldOut && d.SoldOut() {
			continue
		}
		if f.Category != "" && f.Category != "all" &&
			!strings.EqualFold(d.Category, f.Category) {
			continue
		}
		if f.MinDiscount > 0 && d.DiscountPercent < f.MinDiscount {
			continue
		}
		if window, ok := models.ExpiryBuckets[f.ExpiringIn]; ok {
			if d.EndDate.After(now.Add(window)) {
				continue
			}
		}
		out = append(out, d)
	}
	return out
}

// SortDeals orders a copy of the slice by the named comparator. Unknown keys
// fall back to ending-soon. Ordering is stable, membership never changes.
func SortDeals(deals []models.Deal, key string) []models.Deal {
	out := make([]models.Deal, len(deals))
	copy(out, deals)

	var less func(a, b models.Deal) bool
	switch key {
	case models.SortDiscountHigh:
		less = func(a, b models.Deal) bool { return a.DiscountPercent > b.DiscountPercent }
	case models.SortDiscountLow:
		less = func(a, b models.Deal) bool { return a.DiscountPercent < b.DiscountPercent }
	case models.SortPriceLow:
		less = func(a, b models.Deal) bool { return a.DealPrice < b.DealPrice }
	case models.SortPriceHigh:
		less = func(a, b models.Deal) bool { return a.DealPrice > b.DealPrice }
	case models.SortStockLow:
		less = func(a, b models.Deal) bool { return a.StockRatio() < b.StockRatio() }
	case models.SortPopular:
		less = func(a, b models.Deal) bool { return a.SoldCount > b.SoldCount }
	default:
		less = func(a, b models.Deal) bool { return a.EndDate.Before(b.EndDate) }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// PaginateDeals slices one page out of the collection. The page is clamped
// into [1, totalPages] so an out-of-range request returns the nearest real
// page instead of an empty one; totalPages is never below 1.
func PaginateDeals(deals []models.Deal, page, limit int) ([]models.Deal, models.PaginationMeta) {
	if limit < 1 {
		limit = 12
		if config.AppConfig != nil {
			limit = config.AppConfig.ItemsPerPage
		}
	}

	total := len(deals)
	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return deals[start:end], models.PaginationMeta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

type DealService struct {
	repo        *repositories.DealRepository
	invalidator *libs.Debouncer
}

func NewDealService() *DealService {
	return &DealService{
		repo:        repositories.NewDealRepository(),
		invalidator: libs.NewDebouncer(300 * time.Millisecond),
	}
}

type dealListPage struct {
	Data []models.Deal         `json:"data"`
	Meta models.PaginationMeta `json:"meta"`
}

func dealCacheKey(f models.DealFilter, sortKey string, page, limit int) string {
	return fmt.Sprintf("deals_list_c%s_d%d_e%s_s%t_o%s_p%d_l%d",
		f.Category, f.MinDiscount, f.ExpiringIn, f.IncludeSoldOut, sortKey, page, limit)
}

// ListDeals derives the filtered, sorted, paginated view. Derived pages are
// cached in redis keyed on the full query, so repeat queries skip the DB
// round-trip entirely.
func (s *DealService) ListDeals(ctx context.Context, f models.DealFilter, sortKey string, page, limit int) ([]models.Deal, models.PaginationMeta, error) {
	cacheKey := dealCacheKey(f, sortKey, page, limit)

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var pageData dealListPage
			if json.Unmarshal([]byte(cached), &pageData) == nil {
				return pageData.Data, pageData.Meta, nil
			}
		}
	}

	deals, err := s.repo.GetActiveDeals(ctx)
	if err != nil {
		return nil, models.PaginationMeta{}, err
	}

	filtered := FilterDeals(deals, f, time.Now())
	sorted := SortDeals(filtered, sortKey)
	pageItems, meta := PaginateDeals(sorted, page, limit)

	if models.RedisClient != nil {
		jsonData, _ := json.Marshal(dealListPage{Data: pageItems, Meta: meta})
		models.RedisClient.Set(ctx, cacheKey, string(jsonData), config.AppConfig.CacheTTL)
	}

	return pageItems, meta, nil
}

// GetDeal returns the detail projection with countdown and urgency computed.
func (s *DealService) GetDeal(ctx context.Context, id int) (*models.FlashSaleItem, error) {
	deal, err := s.repo.GetDealByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item := &models.FlashSaleItem{
		Deal:     *deal,
		TimeLeft: models.CalcTimeLeft(deal.EndDate, time.Now()),
	}
	if deal.IsFlashSale {
		item.Urgency = models.StockUrgency(deal.RemainingStock, deal.OriginalStock)
	}
	return item, nil
}

func (s *DealService) CreateDeal(ctx context.Context, d *models.Deal) error {
	if err := s.repo.CreateDeal(ctx, d); err != nil {
		return err
	}
	s.NotifyChanged()
	return nil
}

func (s *DealService) UpdateDeal(ctx context.Context, d *models.Deal) error {
	if err := s.repo.UpdateDeal(ctx, d); err != nil {
		return err
	}
	s.NotifyChanged()
	return nil
}

func (s *DealService) DeleteDeal(ctx context.Context, id int) error {
	if err := s.repo.DeleteDeal(ctx, id); err != nil {
		return err
	}
	s.NotifyChanged()
	return nil
}

// NotifyChanged schedules a cache invalidation; bursts of admin writes
// collapse into a single scan.
func (s *DealService) NotifyChanged() {
	s.invalidator.Trigger(s.InvalidateCache)
}

// InvalidateCache drops every cached deal page immediately.
func (s *DealService) InvalidateCache() {
	if models.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := models.RedisClient.Scan(ctx, 0, "deals_list_*", 0).Iterator()
	for iter.Next(ctx) {
		models.RedisClient.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Printf("Deal cache invalidation failed: %v", err)
	}
}
