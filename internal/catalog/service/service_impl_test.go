package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vottam/vottam/internal/catalog/domain"
	"github.com/vottam/vottam/internal/catalog/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.Product{},
		&domain.NutritionFacts{},
		&domain.ProductScore{},
	))
	return db
}

func newService(t *testing.T, db *gorm.DB) domain.Service {
	t.Helper()
	return New(Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
}

func seedProduct(t *testing.T, db *gorm.DB, p domain.Product, health int, value float64) {
	t.Helper()
	require.NoError(t, db.Create(&p).Error)
	require.NoError(t, db.Create(&domain.ProductScore{
		ProductID:          p.ID,
		HealthScore:        health,
		SmartestValueScore: value,
	}).Error)
}

func TestSearch_CategoryAliases(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db)

	seedProduct(t, db, domain.Product{
		ID: 1, Brand: "Meridian", Name: "Almond Butter",
		Category: domain.CategoryNutButter, DietaryType: domain.DietaryVegan,
		PriceLocalCurrency: 6.50,
	}, 90, 80)
	seedProduct(t, db, domain.Product{
		ID: 2, Brand: "Oatly", Name: "Oat Drink",
		Category: domain.CategoryPlantBasedMilk, DietaryType: domain.DietaryVegetarian,
		PriceLocalCurrency: 1.80,
	}, 70, 60)

	spreads, err := svc.Search(context.Background(), domain.SearchRequest{Category: "Spreads"})
	require.NoError(t, err)
	require.Len(t, spreads, 1)
	assert.Equal(t, "1", spreads[0].FoodID)

	milk, err := svc.Search(context.Background(), domain.SearchRequest{Category: "Milk Alternatives"})
	require.NoError(t, err)
	require.Len(t, milk, 1)
	assert.Equal(t, "2", milk[0].FoodID)

	vegan, err := svc.Search(context.Background(), domain.SearchRequest{Category: "Vegan"})
	require.NoError(t, err)
	require.Len(t, vegan, 1)
	assert.Equal(t, "Meridian", vegan[0].BrandName)
}

func TestSearch_InvalidCategory(t *testing.T) {
	svc := newService(t, newTestDB(t))

	_, err := svc.Search(context.Background(), domain.SearchRequest{Category: "Candy"})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestSearch_NegativePriceRejected(t *testing.T) {
	svc := newService(t, newTestDB(t))

	_, err := svc.Search(context.Background(), domain.SearchRequest{MinPrice: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	_, err = svc.Search(context.Background(), domain.SearchRequest{MaxPrice: -5})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestSearch_DefaultPriceCeiling(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db)

	seedProduct(t, db, domain.Product{
		ID: 1, Brand: "Budget", Name: "Peanut Butter",
		Category: domain.CategoryNutButter, PriceLocalCurrency: 4.00,
	}, 80, 70)
	seedProduct(t, db, domain.Product{
		ID: 2, Brand: "Luxury", Name: "Truffle Butter",
		Category: domain.CategoryNutButter, PriceLocalCurrency: 250.00,
	}, 85, 75)

	out, err := svc.Search(context.Background(), domain.SearchRequest{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Budget", out[0].BrandName)
}

func TestSearch_OrdersByHealthScore(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db)

	seedProduct(t, db, domain.Product{
		ID: 1, Brand: "A", Name: "Low", Category: domain.CategoryNutButter, PriceLocalCurrency: 5,
	}, 40, 30)
	seedProduct(t, db, domain.Product{
		ID: 2, Brand: "B", Name: "High", Category: domain.CategoryNutButter, PriceLocalCurrency: 5,
	}, 95, 90)

	out, err := svc.Search(context.Background(), domain.SearchRequest{})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "2", out[0].FoodID)
	assert.Equal(t, "1", out[1].FoodID)
}

func TestSearch_QueryMatchesNameAndBrand(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db)

	seedProduct(t, db, domain.Product{
		ID: 1, Brand: "Meridian", Name: "Almond Butter",
		Category: domain.CategoryNutButter, PriceLocalCurrency: 6,
	}, 90, 80)
	seedProduct(t, db, domain.Product{
		ID: 2, Brand: "Whole Earth", Name: "Peanut Butter",
		Category: domain.CategoryNutButter, PriceLocalCurrency: 3,
	}, 85, 75)

	byName, err := svc.Search(context.Background(), domain.SearchRequest{Query: "almond"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Meridian", byName[0].BrandName)

	byBrand, err := svc.Search(context.Background(), domain.SearchRequest{Query: "whole earth"})
	require.NoError(t, err)
	require.Len(t, byBrand, 1)
	assert.Equal(t, "Whole Earth", byBrand[0].BrandName)
}

func TestListByCategory_OrdersByValueScore(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db)

	seedProduct(t, db, domain.Product{
		ID: 1, Brand: "A", Name: "One", Category: domain.CategoryProteinPowder,
		WeightGrams: 500, PriceLocalCurrency: 20,
	}, 60, 40)
	seedProduct(t, db, domain.Product{
		ID: 2, Brand: "B", Name: "Two", Category: domain.CategoryProteinPowder,
		WeightGrams: 1000, PriceLocalCurrency: 25,
	}, 55, 88)

	out, err := svc.ListByCategory(context.Background(), domain.CategoryProteinPowder)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "2", out[0].FoodID)
	assert.Equal(t, "1", out[1].FoodID)
}

func TestListByCategory_Invalid(t *testing.T) {
	svc := newService(t, newTestDB(t))

	_, err := svc.ListByCategory(context.Background(), "Snacks")
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestGet_NotFound(t *testing.T) {
	svc := newService(t, newTestDB(t))

	_, err := svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGet_DescriptionShape(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db)

	seedProduct(t, db, domain.Product{
		ID: 1, Brand: "Meridian", Name: "Almond Butter",
		Category: domain.CategoryNutButter, DietaryType: domain.DietaryVegan,
		WeightGrams: 280, PriceLocalCurrency: 6.50,
	}, 92, 84)

	out, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Meridian Almond Butter", out.FoodName)
	assert.Equal(t, "280g | £6.50 | Vegan", out.Description)
	assert.Equal(t, 92, out.Scores.HealthScore)
}
