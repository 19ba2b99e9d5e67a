package repository

import (
	"context"

	"github.com/vottam/vottam/internal/insight/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Rank(ctx context.Context, db *gorm.DB, category string, healthScore int) (domain.Rank, error) {
	var result struct {
		Total  int64
		Higher int64
	}
	err := db.WithContext(ctx).Raw(
		`SELECT COUNT(*) AS total,
		        COALESCE(SUM(CASE WHEN s.health_score > ? THEN 1 ELSE 0 END), 0) AS higher
		 FROM products p
		 LEFT JOIN product_scores s ON s.product_id = p.id
		 WHERE p.category = ?`,
		healthScore,
		category,
	).Scan(&result).Error
	if err != nil {
		return domain.Rank{}, err
	}
	return domain.Rank{Rank: result.Higher + 1, Total: result.Total}, nil
}
