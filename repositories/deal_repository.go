package repositories

import (
	"context"
	"time"

	"fabric-store/models"
)

type DealRepository struct{}

func NewDealRepository() *DealRepository {
	return &DealRepository{}
}

const dealColumns = `d.id, d.product_id, p.name, c.name, COALESCE(p.image_url, ''),
	d.original_price, d.deal_price, d.discount_percent, d.end_date,
	d.is_flash_sale, d.original_stock, d.remaining_stock, d.sold_count,
	d.is_active, d.created_at, d.updated_at`

// GetActiveDeals loads every active deal with its product and category. The
// deals table is authoritative for stock; remaining counts are clamped into
// [0, original] so a lagging writer can never surface a negative count.
func (r *DealRepository) GetActiveDeals(ctx context.Context) ([]models.Deal, error) {
	query := `SELECT ` + dealColumns + `
	          FROM deals d
	          JOIN products p ON p.id = d.product_id
	          JOIN categories c ON c.id = p.category_id
	          WHERE d.is_active = true AND p.is_active = true
	          ORDER BY d.end_date ASC`

	rows, err := models.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deals := []models.Deal{}
	for rows.Next() {
		var d models.Deal
		if err := rows.Scan(&d.ID, &d.ProductID, &d.ProductName, &d.Category, &d.ImageURL,
			&d.OriginalPrice, &d.DealPrice, &d.DiscountPercent, &d.EndDate,
			&d.IsFlashSale, &d.OriginalStock, &d.RemainingStock, &d.SoldCount,
			&d.IsActive, &d.CreatedAt, &d.UpdatedAt); err != nil {
			continue
		}
		clampStock(&d)
		deals = append(deals, d)
	}
	return deals, nil
}

func (r *DealRepository) GetDealByID(ctx context.Context, id int) (*models.Deal, error) {
	query := `SELECT ` + dealColumns + `
	          FROM deals d
	          JOIN products p ON p.id = d.product_id
	          JOIN categories c ON c.id = p.category_id
	          WHERE d.id = $1`

	var d models.Deal
	err := models.DB.QueryRow(ctx, query, id).Scan(&d.ID, &d.ProductID, &d.ProductName,
		&d.Category, &d.ImageURL, &d.OriginalPrice, &d.DealPrice, &d.DiscountPercent,
		&d.EndDate, &d.IsFlashSale, &d.OriginalStock, &d.RemainingStock, &d.SoldCount,
		&d.IsActive, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	clampStock(&d)
	return &d, nil
}

func (r *DealRepository) CreateDeal(ctx context.Context, d *models.Deal) error {
	query := `INSERT INTO deals (product_id, original_price, deal_price, discount_percent,
	          end_date, is_flash_sale, original_stock, remaining_stock, sold_count,
	          is_active, created_at, updated_at)
	          VALUES ($1,$2,$3,$4,$5,$6,$7,$8,0,true,$9,$9)
	          RETURNING id, created_at, updated_at`
	now := time.Now()
	return models.DB.QueryRow(ctx, query,
		d.ProductID, d.OriginalPrice, d.DealPrice, d.DiscountPercent,
		d.EndDate, d.IsFlashSale, d.OriginalStock, d.RemainingStock, now,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

func (r *DealRepository) UpdateDeal(ctx context.Context, d *models.Deal) error {
	query := `UPDATE deals SET original_price=$1, deal_price=$2, discount_percent=$3,
	          end_date=$4, is_flash_sale=$5, original_stock=$6, remaining_stock=$7,
	          is_active=$8, updated_at=$9 WHERE id=$10`
	_, err := models.DB.Exec(ctx, query,
		d.OriginalPrice, d.DealPrice, d.DiscountPercent, d.EndDate,
		d.IsFlashSale, d.OriginalStock, d.RemainingStock, d.IsActive, time.Now(), d.ID)
	return err
}

func (r *DealRepository) DeleteDeal(ctx context.Context, id int) error {
	_, err := models.DB.Exec(ctx, `UPDATE deals SET is_active = false WHERE id = $1`, id)
	return err
}

func clampStock(d *models.Deal) {
	if d.RemainingStock < 0 {
		d.RemainingStock = 0
	}
	if d.OriginalStock > 0 && d.RemainingStock > d.OriginalStock {
		d.RemainingStock = d.OriginalStock
	}
}
