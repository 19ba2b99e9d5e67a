package domain

import (
	"context"
	"errors"

	"github.com/vottam/vottam/internal/scoring"
	"gorm.io/gorm"
)

// Rank is the ordinal position of a product's stored health score among
// its category peers. Ties share a rank.
type Rank struct {
	Rank  int64 `json:"rank"`
	Total int64 `json:"total"`
}

// BreakdownResponse is the per-metric rationale behind a stored health
// score, plus the category rank computed against current data.
type BreakdownResponse struct {
	ProductID    string                 `json:"product_id"`
	ProductName  string                 `json:"product_name"`
	HealthScore  int                    `json:"health_score"`
	UserContext  scoring.UserContext    `json:"user_context"`
	Breakdown    []scoring.MetricRating `json:"breakdown"`
	CategoryRank Rank                   `json:"category_rank"`
}

type Service interface {
	// Breakdown explains productID's stored score. userID of zero means
	// anonymous; unknown users fall back to the default context.
	Breakdown(ctx context.Context, productID, userID int64) (*BreakdownResponse, error)
}

type Repository interface {
	// Rank computes the product's standing from the stored score table at
	// call time. It must not cache across calls.
	Rank(ctx context.Context, db *gorm.DB, category string, healthScore int) (Rank, error)
}

var ErrNotFound = errors.New("not_found")
