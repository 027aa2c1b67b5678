package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fabric-store/models"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func sampleDeals() []models.Deal {
	// Ten active deals across categories with staggered discounts and end
	// dates; two flash items, one of them sold out.
	deals := make([]models.Deal, 0, 10)
	for i := 1; i <= 10; i++ {
		d := models.Deal{
			ID:              i,
			ProductName:     fmt.Sprintf("Fabric %d", i),
			Category:        "Cotton",
			OriginalPrice:   1000,
			DealPrice:       1000 - i*50,
			DiscountPercent: i * 5,
			EndDate:         testNow.Add(time.Duration(i) * time.Hour),
			SoldCount:       i * 3,
			IsActive:        true,
		}
		if i%2 == 0 {
			d.Category = "Linen"
		}
		deals = append(deals, d)
	}

	deals[8].IsFlashSale = true
	deals[8].OriginalStock = 50
	deals[8].RemainingStock = 4

	deals[9].IsFlashSale = true
	deals[9].OriginalStock = 20
	deals[9].RemainingStock = 0

	return deals
}

func dealIDs(deals []models.Deal) []int {
	ids := make([]int, len(deals))
	for i, d := range deals {
		ids[i] = d.ID
	}
	return ids
}

func TestFilterDealsDropsExpired(t *testing.T) {
	deals := sampleDeals()
	deals[0].EndDate = testNow.Add(-time.Minute)
	deals[1].EndDate = testNow

	out := FilterDeals(deals, models.DealFilter{IncludeSoldOut: true}, testNow)

	assert.Len(t, out, 8)
	for _, d := range out {
		assert.True(t, d.EndDate.After(testNow))
	}
}

func TestFilterDealsSoldOutVisibility(t *testing.T) {
	deals := sampleDeals()

	hidden := FilterDeals(deals, models.DealFilter{}, testNow)
	assert.NotContains(t, dealIDs(hidden), 10)

	shown := FilterDeals(deals, models.DealFilter{IncludeSoldOut: true}, testNow)
	assert.Contains(t, dealIDs(shown), 10)
}

func TestFilterDealsMinDiscount(t *testing.T) {
	deals := sampleDeals()

	out := FilterDeals(deals, models.DealFilter{MinDiscount: 30, IncludeSoldOut: true}, testNow)

	assert.Len(t, out, 5)
	for _, d := range out {
		assert.GreaterOrEqual(t, d.DiscountPercent, 30)
	}
}

func TestFilterDealsCategoryAndExpiry(t *testing.T) {
	deals := sampleDeals()

	linen := FilterDeals(deals, models.DealFilter{Category: "linen", IncludeSoldOut: true}, testNow)
	for _, d := range linen {
		assert.Equal(t, "Linen", d.Category)
	}
	assert.Len(t, linen, 5)

	all := FilterDeals(deals, models.DealFilter{Category: "all", IncludeSoldOut: true}, testNow)
	assert.Len(t, all, 10)

	soon := FilterDeals(deals, models.DealFilter{ExpiringIn: "6h", IncludeSoldOut: true}, testNow)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, dealIDs(soon))
}

func TestFilterDealsIdempotent(t *testing.T) {
	deals := sampleDeals()
	f := models.DealFilter{Category: "Cotton", MinDiscount: 15, ExpiringIn: "24h"}

	once := FilterDeals(deals, f, testNow)
	twice := FilterDeals(once, f, testNow)

	assert.Equal(t, once, twice)
}

func TestFilterDealsDoesNotMutateInput(t *testing.T) {
	deals := sampleDeals()
	before := dealIDs(deals)

	FilterDeals(deals, models.DealFilter{MinDiscount: 30}, testNow)

	assert.Equal(t, before, dealIDs(deals))
}

func TestSortDealsPreservesMembership(t *testing.T) {
	deals := sampleDeals()

	for _, key := range []string{
		models.SortEndingSoon, models.SortDiscountHigh, models.SortDiscountLow,
		models.SortPriceLow, models.SortPriceHigh, models.SortStockLow,
		models.SortPopular, "nonsense",
	} {
		out := SortDeals(deals, key)
		assert.ElementsMatch(t, dealIDs(deals), dealIDs(out), "sort %q", key)
	}
}

func TestSortDealsOrdering(t *testing.T) {
	deals := sampleDeals()

	byDiscount := SortDeals(deals, models.SortDiscountHigh)
	for i := 1; i < len(byDiscount); i++ {
		assert.GreaterOrEqual(t, byDiscount[i-1].DiscountPercent, byDiscount[i].DiscountPercent)
	}

	byEnd := SortDeals(deals, "unknown-key")
	for i := 1; i < len(byEnd); i++ {
		assert.False(t, byEnd[i].EndDate.Before(byEnd[i-1].EndDate))
	}

	byStock := SortDeals(deals, models.SortStockLow)
	assert.Equal(t, 10, byStock[0].ID, "sold-out flash item has the lowest ratio")
	assert.Equal(t, 9, byStock[1].ID)
}

func TestFilterThenSortHighDiscountScenario(t *testing.T) {
	deals := sampleDeals()

	filtered := FilterDeals(deals, models.DealFilter{MinDiscount: 30, IncludeSoldOut: true}, testNow)
	sorted := SortDeals(filtered, models.SortDiscountHigh)

	require.Len(t, sorted, 5)
	assert.Equal(t, []int{10, 9, 8, 7, 6}, dealIDs(sorted))
	assert.Equal(t, 50, sorted[0].DiscountPercent)
}

func TestPaginateDealsPageSizes(t *testing.T) {
	deals := make([]models.Deal, 25)
	for i := range deals {
		deals[i] = models.Deal{ID: i + 1}
	}

	sizes := []int{}
	for page := 1; page <= 3; page++ {
		items, meta := PaginateDeals(deals, page, 12)
		sizes = append(sizes, len(items))
		assert.Equal(t, page, meta.Page)
		assert.Equal(t, 25, meta.TotalItems)
		assert.Equal(t, 3, meta.TotalPages)
	}
	assert.Equal(t, []int{12, 12, 1}, sizes)

	items, _ := PaginateDeals(deals, 2, 12)
	assert.Equal(t, 13, items[0].ID)
}

func TestPaginateDealsClampsPage(t *testing.T) {
	deals := make([]models.Deal, 25)
	for i := range deals {
		deals[i] = models.Deal{ID: i + 1}
	}

	items, meta := PaginateDeals(deals, 99, 12)
	assert.Equal(t, 3, meta.Page)
	assert.Len(t, items, 1)
	assert.Equal(t, 25, items[0].ID)

	items, meta = PaginateDeals(deals, 0, 12)
	assert.Equal(t, 1, meta.Page)
	assert.Len(t, items, 12)
}

func TestPaginateDealsEmptyCollection(t *testing.T) {
	items, meta := PaginateDeals(nil, 5, 12)

	assert.Empty(t, items)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 1, meta.TotalPages)
	assert.Equal(t, 0, meta.TotalItems)
}

func TestDealCacheKeyDistinguishesQueries(t *testing.T) {
	base := dealCacheKey(models.DealFilter{Category: "cotton"}, models.SortPopular, 1, 12)

	assert.NotEqual(t, base, dealCacheKey(models.DealFilter{Category: "linen"}, models.SortPopular, 1, 12))
	assert.NotEqual(t, base, dealCacheKey(models.DealFilter{Category: "cotton"}, models.SortPopular, 2, 12))
	assert.NotEqual(t, base, dealCacheKey(models.DealFilter{Category: "cotton", IncludeSoldOut: true}, models.SortPopular, 1, 12))
	assert.Equal(t, base, dealCacheKey(models.DealFilter{Category: "cotton"}, models.SortPopular, 1, 12))
}
