package repositories

import (
	"context"

	"fabric-store/models"
)

type FAQRepository struct{}

func NewFAQRepository() *FAQRepository {
	return &FAQRepository{}
}

func (r *FAQRepository) GetAllFAQs(ctx context.Context) ([]models.FAQ, error) {
	query := `SELECT id, question, answer, category, helpful_count, not_helpful_count,
	          position, is_active, created_at
	          FROM faqs WHERE is_active = true ORDER BY category, position`

	rows, err := models.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	faqs := []models.FAQ{}
	for rows.Next() {
		var f models.FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.Category,
			&f.HelpfulCount, &f.NotHelpfulCount, &f.Position, &f.IsActive, &f.CreatedAt); err != nil {
			continue
		}
		faqs = append(faqs, f)
	}
	return faqs, nil
}

func (r *FAQRepository) GetFAQByID(ctx context.Context, id int) (*models.FAQ, error) {
	query := `SELECT id, question, answer, category, helpful_count, not_helpful_count,
	          position, is_active, created_at
	          FROM faqs WHERE id = $1`

	var f models.FAQ
	err := models.DB.QueryRow(ctx, query, id).Scan(&f.ID, &f.Question, &f.Answer,
		&f.Category, &f.HelpfulCount, &f.NotHelpfulCount, &f.Position, &f.IsActive, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// ApplyVote shifts the helpful counters. delta is +1 to add a vote and -1 to
// withdraw one when the visitor switches sides.
func (r *FAQRepository) ApplyVote(ctx context.Context, id int, helpful bool, delta int) error {
	column := "not_helpful_count"
	if helpful {
		column = "helpful_count"
	}
	query := `UPDATE faqs SET ` + column + ` = GREATEST(` + column + ` + $1, 0) WHERE id = $2`
	_, err := models.DB.Exec(ctx, query, delta, id)
	return err
}
