package domain

import (
	"context"
	"errors"
)

// Service answers catalog display queries. Scores are read from the stored
// product_scores table, never recomputed here.
type Service interface {
	Search(ctx context.Context, req SearchRequest) ([]SummaryResponse, error)
	ListByCategory(ctx context.Context, category string) ([]SummaryResponse, error)
	Categories(ctx context.Context) ([]CategoryCount, error)
	Get(ctx context.Context, id int64) (*SummaryResponse, error)
}

// SearchRequest filters the catalog. Query matches name or brand as a
// case-insensitive substring. Category accepts the UI aliases "Spreads",
// "Milk Alternatives" and "Vegan" alongside real category names.
type SearchRequest struct {
	Query    string
	Category string
	MinPrice float64
	MaxPrice float64
}

// SummaryResponse is the display shape consumed by the front end.
type SummaryResponse struct {
	FoodID       string          `json:"food_id"`
	FoodName     string          `json:"food_name"`
	BrandName    string          `json:"brand_name"`
	ProductImage string          `json:"product_image"`
	Description  string          `json:"food_description"`
	Category     string          `json:"category"`
	Nutrition    *NutritionView  `json:"nutrition,omitempty"`
	Scores       ScoreView       `json:"scores"`
	Source       string          `json:"source"`
}

type NutritionView struct {
	Sugar        float64 `json:"sugar"`
	Salt         float64 `json:"salt"`
	Protein      float64 `json:"protein"`
	Fiber        float64 `json:"fiber"`
	HasAdditives bool    `json:"has_additives"`
}

type ScoreView struct {
	HealthScore int     `json:"health_score"`
	ValueScore  float64 `json:"value_score"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

var (
	ErrNotFound        = errors.New("not_found")
	ErrInvalidCategory = errors.New("invalid_category")
	ErrInvalidPrice    = errors.New("invalid_price")
)
