package repository

import (
	"context"

	"github.com/vottam/vottam/internal/history/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, entry *domain.ScanEntry) error {
	return db.WithContext(ctx).Create(entry).Error
}

func (r *repo) Recent(ctx context.Context, db *gorm.DB, userID int64, limit int) ([]domain.RecentEntry, error) {
	var entries []domain.RecentEntry
	err := db.WithContext(ctx).Raw(
		`SELECT sh.id, sh.user_id, sh.product_id, sh.product_name, sh.action, sh.scanned_at,
		        COALESCE(p.brand, '') AS brand,
		        COALESCE(p.category, '') AS category,
		        COALESCE(ps.health_score, 0) AS health_score
		 FROM scan_history sh
		 LEFT JOIN products p ON sh.product_id = p.id
		 LEFT JOIN product_scores ps ON sh.product_id = ps.product_id
		 WHERE sh.user_id = ?
		 ORDER BY sh.scanned_at DESC, sh.id DESC
		 LIMIT ?`,
		userID,
		limit,
	).Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *repo) FrequentCategories(ctx context.Context, db *gorm.DB, userID int64, limit int) ([]domain.FrequentCategory, error) {
	var categories []domain.FrequentCategory
	err := db.WithContext(ctx).Raw(
		`SELECT p.category, COUNT(*) AS count
		 FROM scan_history sh
		 JOIN products p ON sh.product_id = p.id
		 WHERE sh.user_id = ?
		 GROUP BY p.category
		 ORDER BY count DESC
		 LIMIT ?`,
		userID,
		limit,
	).Scan(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
