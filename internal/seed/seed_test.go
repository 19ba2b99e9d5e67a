package seed

import (
	"fmt"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	catalogdomain "github.com/vottam/vottam/internal/catalog/domain"
	userdomain "github.com/vottam/vottam/internal/user/domain"
	"github.com/vottam/vottam/internal/user/password"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&catalogdomain.Product{},
		&catalogdomain.NutritionFacts{},
		&catalogdomain.ProductScore{},
		&userdomain.User{},
	))
	return db
}

func TestEnsureDemoUsers_Idempotent(t *testing.T) {
	db := newTestDB(t)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	require.NoError(t, EnsureDemoUsers(db, node))
	require.NoError(t, EnsureDemoUsers(db, node))

	var users []userdomain.User
	require.NoError(t, db.Order("username ASC").Find(&users).Error)
	require.Len(t, users, 3)
	assert.Equal(t, "gourav", users[0].Username)
	assert.True(t, password.Verify("demo123", users[0].PasswordHash))
	assert.Equal(t, "Vegan", users[0].Preferences["diet"])
}

func TestEnsureCatalog_Idempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, EnsureCatalog(db))
	require.NoError(t, EnsureCatalog(db))

	var products, facts, scores int64
	require.NoError(t, db.Model(&catalogdomain.Product{}).Count(&products).Error)
	require.NoError(t, db.Model(&catalogdomain.NutritionFacts{}).Count(&facts).Error)
	require.NoError(t, db.Model(&catalogdomain.ProductScore{}).Count(&scores).Error)

	assert.Equal(t, int64(len(catalog)), products)
	assert.Equal(t, products, facts)
	assert.Equal(t, products, scores)
}

func TestEnsureCatalog_SeedsKnownProduct(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, EnsureCatalog(db))

	var p catalogdomain.Product
	require.NoError(t, db.First(&p, "external_id = ?", "nb001").Error)
	assert.Equal(t, catalogdomain.CategoryNutButter, p.Category)

	var score catalogdomain.ProductScore
	require.NoError(t, db.First(&score, "product_id = ?", p.ID).Error)
	assert.Greater(t, score.HealthScore, 0)
}

func TestSeed_RequiresDB(t *testing.T) {
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	assert.Error(t, EnsureDemoUsers(nil, node))
	assert.Error(t, EnsureCatalog(nil))
}
