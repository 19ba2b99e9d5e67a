package domain

import "time"

// Product categories known to the catalog. The check mirrors the seeded
// data; anything else is rejected at ingestion.
const (
	CategoryNutButter      = "Nut Butter"
	CategoryProteinPowder  = "Protein Powder"
	CategoryPlantBasedMeat = "Plant-Based Meat"
	CategoryLegume         = "Legume"
	CategoryProteinBar     = "Protein Bar"
	CategoryPlantBasedMilk = "Plant-Based Milk"
	CategoryYogurt         = "Yogurt"
)

const (
	DietaryVegan      = "Vegan"
	DietaryVegetarian = "Vegetarian"
)

// Categories lists every valid category.
var Categories = []string{
	CategoryNutButter,
	CategoryProteinPowder,
	CategoryPlantBasedMeat,
	CategoryLegume,
	CategoryProteinBar,
	CategoryPlantBasedMilk,
	CategoryYogurt,
}

// ValidCategory reports whether c is a known catalog category.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}

type Product struct {
	ID                 int64   `json:"id" gorm:"primaryKey"`
	ExternalID         string  `json:"external_id" gorm:"type:text;uniqueIndex"`
	Brand              string  `json:"brand" gorm:"type:text;not null"`
	Name               string  `json:"name" gorm:"type:text;not null"`
	ImageURL           string  `json:"image_url" gorm:"type:text"`
	Category           string  `json:"category" gorm:"type:text;not null;index"`
	DietaryType        string  `json:"dietary_type" gorm:"type:text"`
	WeightGrams        float64 `json:"weight_grams"`
	PriceLocalCurrency float64 `json:"price_local_currency"`
}

func (Product) TableName() string { return "products" }

// NutritionFacts is owned 1:1 by a Product. Facts are per 100g.
type NutritionFacts struct {
	ProductID      int64   `json:"product_id" gorm:"primaryKey"`
	SugarPer100g   float64 `json:"sugar_per_100g" gorm:"column:sugar_per_100g"`
	SaltPer100g    float64 `json:"salt_per_100g" gorm:"column:salt_per_100g"`
	ProteinPer100g float64 `json:"protein_per_100g" gorm:"column:protein_per_100g"`
	FiberPer100g   float64 `json:"fiber_per_100g" gorm:"column:fiber_per_100g"`
	HasAdditives   bool    `json:"has_additives"`
}

func (NutritionFacts) TableName() string { return "nutrition_facts" }

// ProductScore is owned 1:1 by a Product and written only by the batch
// recompute job. Reads treat the stored health score as ground truth.
type ProductScore struct {
	ProductID          int64     `json:"product_id" gorm:"primaryKey"`
	HealthScore        int       `json:"health_score"`
	PricePenalty       float64   `json:"price_penalty"`
	SmartestValueScore float64   `json:"smartest_value_score"`
	LastUpdated        time.Time `json:"last_updated"`
}

func (ProductScore) TableName() string { return "product_scores" }
