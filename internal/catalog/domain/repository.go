package domain

import (
	"context"
	"fmt"
	"strconv"

	"gorm.io/gorm"
)

// Row is one product joined with its nutrition facts and stored score.
// Nullable join columns surface as zero values; HasNutrition and HasScore
// report whether the joined rows exist.
type Row struct {
	Product
	SugarPer100g       float64 `gorm:"column:sugar_per_100g"`
	SaltPer100g        float64 `gorm:"column:salt_per_100g"`
	ProteinPer100g     float64 `gorm:"column:protein_per_100g"`
	FiberPer100g       float64 `gorm:"column:fiber_per_100g"`
	HasAdditives       bool
	HasNutrition       bool
	HealthScore        int
	SmartestValueScore float64
	HasScore           bool
}

// Summary converts the joined row into the display shape served to the
// front end. Nutrition is attached only when requested and present.
func (r Row) Summary(withNutrition bool) SummaryResponse {
	desc := fmt.Sprintf("%.0fg | £%.2f", r.WeightGrams, r.PriceLocalCurrency)
	if r.DietaryType != "" {
		desc += " | " + r.DietaryType
	}

	resp := SummaryResponse{
		FoodID:       strconv.FormatInt(r.ID, 10),
		FoodName:     r.Brand + " " + r.Name,
		BrandName:    r.Brand,
		ProductImage: r.ImageURL,
		Description:  desc,
		Category:     r.Category,
		Scores: ScoreView{
			HealthScore: r.HealthScore,
			ValueScore:  r.SmartestValueScore,
		},
		Source: "local",
	}
	if withNutrition && r.HasNutrition {
		resp.Nutrition = &NutritionView{
			Sugar:        r.SugarPer100g,
			Salt:         r.SaltPer100g,
			Protein:      r.ProteinPer100g,
			Fiber:        r.FiberPer100g,
			HasAdditives: r.HasAdditives,
		}
	}
	return resp
}

// Filter narrows a catalog row query.
type Filter struct {
	Query       string
	Category    string
	DietaryType string
	MinPrice    float64
	MaxPrice    float64
	OrderBy     string
	Limit       int
}

type Repository interface {
	Find(ctx context.Context, db *gorm.DB, filter Filter) ([]Row, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Row, error)
	CategoryCounts(ctx context.Context, db *gorm.DB) ([]CategoryCount, error)
	// TopRated returns the highest health-scored rows, optionally limited
	// to the given categories and dietary type.
	TopRated(ctx context.Context, db *gorm.DB, categories []string, dietaryType string, limit int) ([]Row, error)
}
