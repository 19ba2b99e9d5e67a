package repository

import (
	"context"

	"github.com/vottam/vottam/internal/swap/domain"
	"gorm.io/gorm"
)

const candidateColumns = `p.id, p.brand, p.name, p.image_url, p.category,
	p.price_local_currency,
	s.health_score,
	COALESCE(n.sugar_per_100g, 0) AS sugar_per_100g,
	COALESCE(n.protein_per_100g, 0) AS protein_per_100g,
	COALESCE(n.has_additives, 0) AS has_additives,
	(n.product_id IS NOT NULL) AS has_nutrition`

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) BestSameBrand(ctx context.Context, db *gorm.DB, category, brand string, minScore int, excludeID int64) (*domain.Candidate, error) {
	return r.best(ctx, db, func(stmt *gorm.DB) *gorm.DB {
		return stmt.
			Where("p.category = ?", category).
			Where("p.brand = ?", brand).
			Where("s.health_score > ?", minScore).
			Where("p.id <> ?", excludeID)
	})
}

func (r *repo) BestCrossBrand(ctx context.Context, db *gorm.DB, category string, scoreFloor int, excludeID int64) (*domain.Candidate, error) {
	return r.best(ctx, db, func(stmt *gorm.DB) *gorm.DB {
		return stmt.
			Where("p.category = ?", category).
			Where("s.health_score > ?", scoreFloor).
			Where("p.id <> ?", excludeID)
	})
}

func (r *repo) best(ctx context.Context, db *gorm.DB, narrow func(*gorm.DB) *gorm.DB) (*domain.Candidate, error) {
	stmt := db.WithContext(ctx).
		Table("products p").
		Select(candidateColumns).
		Joins("JOIN product_scores s ON s.product_id = p.id").
		Joins("LEFT JOIN nutrition_facts n ON n.product_id = p.id")
	stmt = narrow(stmt)

	// Lowest id breaks score ties so repeated calls stay deterministic.
	var c domain.Candidate
	err := stmt.Order("s.health_score DESC, p.id ASC").Limit(1).Scan(&c).Error
	if err != nil {
		return nil, err
	}
	if c.ID == 0 {
		return nil, nil
	}
	return &c, nil
}
