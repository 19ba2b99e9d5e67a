package seed

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	catalogdomain "github.com/vottam/vottam/internal/catalog/domain"
	userdomain "github.com/vottam/vottam/internal/user/domain"
	"github.com/vottam/vottam/internal/user/password"
)

const demoPassword = "demo123"

type demoUser struct {
	Username string
	Diet     string
	Health   string
}

var demoUsers = []demoUser{
	{Username: "gourav", Diet: "Vegan", Health: "Diabetic"},
	{Username: "sarah", Diet: "Keto", Health: "Weight Loss"},
	{Username: "mike", Diet: "Vegetarian", Health: "High Protein"},
}

type nutrition struct {
	Sugar     float64
	Salt      float64
	Protein   float64
	Fiber     float64
	Additives bool
}

type scores struct {
	Health       int
	PricePenalty float64
	Value        float64
}

type product struct {
	ExternalID  string
	Brand       string
	Name        string
	ImageURL    string
	Category    string
	DietaryType string
	WeightGrams float64
	Price       float64
	Nutrition   nutrition
	Scores      scores
}

// EnsureDemoUsers seeds the demo accounts used by the mobile client.
// Existing accounts are left untouched.
func EnsureDemoUsers(db *gorm.DB, node *snowflake.Node) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, demo := range demoUsers {
			var existing userdomain.User
			err := tx.WithContext(ctx).
				Where("username = ?", demo.Username).
				First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			hashed, err := password.Hash(demoPassword)
			if err != nil {
				return err
			}
			user := userdomain.User{
				ID:           node.Generate().Int64(),
				Username:     demo.Username,
				PasswordHash: hashed,
				Preferences: datatypes.JSONMap{
					"diet":   demo.Diet,
					"health": demo.Health,
				},
			}
			if err := tx.WithContext(ctx).Create(&user).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// EnsureCatalog seeds the starter product catalog with nutrition facts
// and baseline scores. Products are keyed by external id, so re-running
// the seed never duplicates rows.
func EnsureCatalog(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range catalog {
			if err := ensureProductTx(ctx, tx, item); err != nil {
				return err
			}
		}
		return nil
	})
}

func ensureProductTx(ctx context.Context, tx *gorm.DB, item product) error {
	var existing catalogdomain.Product
	err := tx.WithContext(ctx).
		Where("external_id = ?", item.ExternalID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	record := catalogdomain.Product{
		ExternalID:         item.ExternalID,
		Brand:              item.Brand,
		Name:               item.Name,
		ImageURL:           item.ImageURL,
		Category:           item.Category,
		DietaryType:        item.DietaryType,
		WeightGrams:        item.WeightGrams,
		PriceLocalCurrency: item.Price,
	}
	if err := tx.WithContext(ctx).Create(&record).Error; err != nil {
		return err
	}

	facts := catalogdomain.NutritionFacts{
		ProductID:      record.ID,
		SugarPer100g:   item.Nutrition.Sugar,
		SaltPer100g:    item.Nutrition.Salt,
		ProteinPer100g: item.Nutrition.Protein,
		FiberPer100g:   item.Nutrition.Fiber,
		HasAdditives:   item.Nutrition.Additives,
	}
	if err := tx.WithContext(ctx).Create(&facts).Error; err != nil {
		return err
	}

	score := catalogdomain.ProductScore{
		ProductID:          record.ID,
		HealthScore:        item.Scores.Health,
		PricePenalty:       item.Scores.PricePenalty,
		SmartestValueScore: item.Scores.Value,
	}
	return tx.WithContext(ctx).Create(&score).Error
}
