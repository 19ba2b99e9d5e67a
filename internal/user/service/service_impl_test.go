package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vottam/vottam/internal/user/domain"
	"github.com/vottam/vottam/internal/user/password"
	"github.com/vottam/vottam/internal/user/repository"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))
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

func seedUser(t *testing.T, db *gorm.DB, id int64, username, pass string, prefs datatypes.JSONMap) {
	t.Helper()
	hash, err := password.Hash(pass)
	require.NoError(t, err)
	require.NoError(t, db.Create(&domain.User{
		ID:           id,
		Username:     username,
		PasswordHash: hash,
		Preferences:  prefs,
	}).Error)
}

func TestLogin_Success(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db)
	seedUser(t, db, 1, "gourav", "demo123", datatypes.JSONMap{"diet": "Vegan", "health": "Diabetic"})

	resp, err := svc.Login(context.Background(), "gourav", "demo123")
	require.NoError(t, err)
	assert.Equal(t, "1", resp.ID)
	assert.Equal(t, "gourav", resp.Username)
	assert.Equal(t, "Vegan", resp.Preferences.Diet)
	assert.Equal(t, "Diabetic", resp.Preferences.Health)
}

func TestLogin_WrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db)
	seedUser(t, db, 1, "gourav", "demo123", nil)

	_, err := svc.Login(context.Background(), "gourav", "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := newService(t, newTestDB(t))

	_, err := svc.Login(context.Background(), "ghost", "demo123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_BlankInputs(t *testing.T) {
	svc := newService(t, newTestDB(t))

	_, err := svc.Login(context.Background(), "  ", "demo123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "gourav", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestList_OrderedByID(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db)
	seedUser(t, db, 2, "sarah", "demo123", datatypes.JSONMap{"diet": "Keto"})
	seedUser(t, db, 1, "gourav", "demo123", nil)

	out, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "gourav", out[0].Username)
	assert.Equal(t, "sarah", out[1].Username)
	assert.Equal(t, "Keto", out[1].Preferences.Diet)
}

func TestPreferences_UnknownUserIsNil(t *testing.T) {
	svc := newService(t, newTestDB(t))

	prefs, err := svc.Preferences(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, prefs)

	prefs, err = svc.Preferences(context.Background(), 0)
	require.NoError(t, err)
	assert.Nil(t, prefs)
}

func TestPreferences_ParsesJSONMap(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db)
	seedUser(t, db, 3, "mike", "demo123", datatypes.JSONMap{"diet": "Vegetarian", "health": "High Protein"})

	prefs, err := svc.Preferences(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, prefs)
	assert.Equal(t, "Vegetarian", prefs.Diet)
	assert.Equal(t, "High Protein", prefs.Health)
}

func TestPasswordHash_RoundTrip(t *testing.T) {
	hash, err := password.Hash("demo123")
	require.NoError(t, err)
	assert.True(t, password.Verify("demo123", hash))
	assert.False(t, password.Verify("demo124", hash))
	assert.False(t, password.Verify("demo123", "$argon2id$garbage"))
}
