package repository

import (
	"context"

	"github.com/vottam/vottam/internal/catalog/domain"
	"gorm.io/gorm"
)

const rowColumns = `p.id, p.external_id, p.brand, p.name, p.image_url, p.category,
	p.dietary_type, p.weight_grams, p.price_local_currency,
	COALESCE(n.sugar_per_100g, 0) AS sugar_per_100g,
	COALESCE(n.salt_per_100g, 0) AS salt_per_100g,
	COALESCE(n.protein_per_100g, 0) AS protein_per_100g,
	COALESCE(n.fiber_per_100g, 0) AS fiber_per_100g,
	COALESCE(n.has_additives, 0) AS has_additives,
	(n.product_id IS NOT NULL) AS has_nutrition,
	COALESCE(s.health_score, 0) AS health_score,
	COALESCE(s.smartest_value_score, 0) AS smartest_value_score,
	(s.product_id IS NOT NULL) AS has_score`

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) base(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).
		Table("products p").
		Select(rowColumns).
		Joins("LEFT JOIN nutrition_facts n ON n.product_id = p.id").
		Joins("LEFT JOIN product_scores s ON s.product_id = p.id")
}

func (r *repo) Find(ctx context.Context, db *gorm.DB, filter domain.Filter) ([]domain.Row, error) {
	stmt := r.base(ctx, db)

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		stmt = stmt.Where("LOWER(p.name) LIKE LOWER(?) OR LOWER(p.brand) LIKE LOWER(?)", pattern, pattern)
	}
	if filter.Category != "" {
		stmt = stmt.Where("p.category = ?", filter.Category)
	}
	if filter.DietaryType != "" {
		stmt = stmt.Where("p.dietary_type = ?", filter.DietaryType)
	}
	if filter.MaxPrice > 0 {
		stmt = stmt.Where("p.price_local_currency BETWEEN ? AND ?", filter.MinPrice, filter.MaxPrice)
	}

	stmt = stmt.Order(orderClause(filter.OrderBy))
	if filter.Limit > 0 {
		stmt = stmt.Limit(filter.Limit)
	}

	var rows []domain.Row
	if err := stmt.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Row, error) {
	var row domain.Row
	err := r.base(ctx, db).Where("p.id = ?", id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, nil
	}
	return &row, nil
}

func (r *repo) TopRated(ctx context.Context, db *gorm.DB, categories []string, dietaryType string, limit int) ([]domain.Row, error) {
	stmt := r.base(ctx, db)
	if len(categories) > 0 {
		stmt = stmt.Where("p.category IN ?", categories)
	}
	if dietaryType != "" {
		stmt = stmt.Where("p.dietary_type = ?", dietaryType)
	}
	stmt = stmt.Order(orderClause("health"))
	if limit > 0 {
		stmt = stmt.Limit(limit)
	}

	var rows []domain.Row
	if err := stmt.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) CategoryCounts(ctx context.Context, db *gorm.DB) ([]domain.CategoryCount, error) {
	var counts []domain.CategoryCount
	err := db.WithContext(ctx).Raw(
		`SELECT category, COUNT(*) AS count
		 FROM products
		 GROUP BY category
		 ORDER BY count DESC`,
	).Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func orderClause(orderBy string) string {
	switch orderBy {
	case "value":
		return "smartest_value_score DESC, p.id ASC"
	case "health":
		return "health_score DESC, smartest_value_score DESC, p.id ASC"
	default:
		return "p.id ASC"
	}
}
