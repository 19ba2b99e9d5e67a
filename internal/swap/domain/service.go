package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

const (
	SwapTypeSameBrand  = "same_brand"
	SwapTypeCrossBrand = "cross_brand"

	// CrossBrandMargin is the improvement a cross-brand candidate must
	// STRICTLY exceed. An improvement of exactly this many points does not
	// qualify.
	CrossBrandMargin = 10
)

// Candidate is a potential substitute with everything needed to compare it
// against the original.
type Candidate struct {
	ID                 int64
	Brand              string
	Name               string
	ImageURL           string
	Category           string
	PriceLocalCurrency float64
	HealthScore        int
	SugarPer100g       float64 `gorm:"column:sugar_per_100g"`
	ProteinPer100g     float64 `gorm:"column:protein_per_100g"`
	HasAdditives       bool
	HasNutrition       bool
}

// Result is a recommended substitute. A nil Result from the service means
// the product is already the best choice, not an error.
type Result struct {
	ProductID    string   `json:"product_id"`
	Brand        string   `json:"brand"`
	Name         string   `json:"name"`
	ProductImage string   `json:"product_image"`
	HealthScore  int      `json:"health_score"`
	ScoreDelta   int      `json:"score_delta"`
	SwapType     string   `json:"swap_type"`
	Reason       string   `json:"reason"`
	Reasons      []string `json:"reasons"`
}

type Service interface {
	// FindSwap returns nil, nil when no qualifying substitute exists.
	FindSwap(ctx context.Context, productID int64) (*Result, error)
}

type Repository interface {
	// BestSameBrand returns the highest-scoring same-category, same-brand
	// candidate whose score strictly exceeds minScore, or nil.
	BestSameBrand(ctx context.Context, db *gorm.DB, category, brand string, minScore int, excludeID int64) (*Candidate, error)
	// BestCrossBrand returns the highest-scoring same-category candidate
	// whose score strictly exceeds scoreFloor, or nil.
	BestCrossBrand(ctx context.Context, db *gorm.DB, category string, scoreFloor int, excludeID int64) (*Candidate, error)
}

var ErrNotFound = errors.New("not_found")
