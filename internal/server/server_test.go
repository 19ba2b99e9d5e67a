package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	assistantsvc "github.com/vottam/vottam/internal/assistant/service"
	catalogdomain "github.com/vottam/vottam/internal/catalog/domain"
	catalogrepo "github.com/vottam/vottam/internal/catalog/repository"
	catalogsvc "github.com/vottam/vottam/internal/catalog/service"
	"github.com/vottam/vottam/internal/clients/gemini"
	"github.com/vottam/vottam/internal/clock"
	"github.com/vottam/vottam/internal/config"
	historydomain "github.com/vottam/vottam/internal/history/domain"
	historyrepo "github.com/vottam/vottam/internal/history/repository"
	historysvc "github.com/vottam/vottam/internal/history/service"
	insightrepo "github.com/vottam/vottam/internal/insight/repository"
	insightsvc "github.com/vottam/vottam/internal/insight/service"
	"github.com/vottam/vottam/internal/scheduler"
	swaprepo "github.com/vottam/vottam/internal/swap/repository"
	swapsvc "github.com/vottam/vottam/internal/swap/service"
	userdomain "github.com/vottam/vottam/internal/user/domain"
	"github.com/vottam/vottam/internal/user/password"
	userrepo "github.com/vottam/vottam/internal/user/repository"
	usersvc "github.com/vottam/vottam/internal/user/service"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&catalogdomain.Product{},
		&catalogdomain.NutritionFacts{},
		&catalogdomain.ProductScore{},
		&userdomain.User{},
		&historydomain.ScanEntry{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	log := zap.NewNop()
	catalogRepo := catalogrepo.Provide()
	historyRepo := historyrepo.Provide()

	users := usersvc.New(usersvc.Params{DB: db, Log: log, Repo: userrepo.Provide()})
	catalog := catalogsvc.New(catalogsvc.Params{DB: db, Log: log, Repo: catalogRepo})
	insights := insightsvc.New(insightsvc.Params{
		DB: db, Log: log, Repo: insightrepo.Provide(), CatalogRepo: catalogRepo, UserSvc: users,
	})
	swaps := swapsvc.New(swapsvc.Params{DB: db, Log: log, Repo: swaprepo.Provide(), CatalogRepo: catalogRepo})
	histories := historysvc.New(historysvc.Params{
		DB: db, Log: log, GenID: node, Repo: historyRepo, CatalogRepo: catalogRepo, UserSvc: users,
	})
	assistants := assistantsvc.New(assistantsvc.Params{
		DB: db, Log: log, CatalogRepo: catalogRepo, HistoryRepo: historyRepo,
		UserSvc: users, Gemini: &disabledGemini{},
	})

	sched, err := scheduler.New(scheduler.Params{
		DB:     db,
		Log:    log,
		Clock:  clock.NewFakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
		Prices: config.NewStaticPriceConfigHolder(config.DefaultPriceConfig()),
	})
	require.NoError(t, err)

	engine := gin.New()
	engine.Use(ErrorHandlingMiddleware())

	return NewServer(ServerParams{
		Gin:          engine,
		Cfg:          config.Config{},
		DB:           db,
		Usersvc:      users,
		CatalogSvc:   catalog,
		InsightSvc:   insights,
		SwapSvc:      swaps,
		HistorySvc:   histories,
		AssistantSvc: assistants,
		Scheduler:    sched,
	}), db
}

type disabledGemini struct{}

func (disabledGemini) Enabled() bool { return false }

func (disabledGemini) GenerateText(ctx context.Context, prompt string) (string, error) {
	return "", gemini.ErrDisabled
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, req)
	return rec
}

func seedUser(t *testing.T, db *gorm.DB, id int64, username string) {
	t.Helper()
	hash, err := password.Hash("demo123")
	require.NoError(t, err)
	require.NoError(t, db.Create(&userdomain.User{
		ID: id, Username: username, PasswordHash: hash,
		Preferences: datatypes.JSONMap{"diet": "Vegan", "health": "Diabetic"},
	}).Error)
}

func seedScored(t *testing.T, db *gorm.DB, id int64, brand, name, category string, health int) {
	t.Helper()
	require.NoError(t, db.Create(&catalogdomain.Product{
		ID: id, Brand: brand, Name: name, Category: category, PriceLocalCurrency: 3,
	}).Error)
	require.NoError(t, db.Create(&catalogdomain.ProductScore{
		ProductID: id, HealthScore: health,
	}).Error)
}

func TestLoginEndpoint(t *testing.T) {
	s, db := newTestServer(t)
	seedUser(t, db, 1, "gourav")

	rec := doJSON(t, s, http.MethodPost, "/api/login", gin.H{"username": "gourav", "password": "demo123"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp userdomain.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "gourav", resp.Username)
	assert.Equal(t, "Vegan", resp.Preferences.Diet)

	rec = doJSON(t, s, http.MethodPost, "/api/login", gin.H{"username": "gourav", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/api/login", gin.H{"username": "", "password": "demo123"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSwapEndpoint_NullBodyWhenAlreadyBest(t *testing.T) {
	s, db := newTestServer(t)
	seedScored(t, db, 1, "Meridian", "Almond Butter", catalogdomain.CategoryNutButter, 95)

	rec := doJSON(t, s, http.MethodGet, "/api/products/1/swap", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", rec.Body.String())
}

func TestSwapEndpoint_NotFound(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/products/404/swap", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSwapEndpoint_BadID(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/products/abc/swap", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Error.Type)
}

func TestBreakdownEndpoint(t *testing.T) {
	s, db := newTestServer(t)
	seedScored(t, db, 1, "Meridian", "Almond Butter", catalogdomain.CategoryNutButter, 87)

	rec := doJSON(t, s, http.MethodGet, "/api/products/1/breakdown", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		HealthScore int `json:"health_score"`
		Breakdown   []struct {
			Metric string `json:"metric"`
		} `json:"breakdown"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 87, resp.HealthScore)
	assert.Len(t, resp.Breakdown, 5)

	rec = doJSON(t, s, http.MethodGet, "/api/products/9/breakdown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChatEndpoint_BlankQuery(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/chat", gin.H{"query": "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScanHistoryEndpoint(t *testing.T) {
	s, db := newTestServer(t)
	seedScored(t, db, 1, "Oatly", "Oat Drink", catalogdomain.CategoryPlantBasedMilk, 70)

	rec := doJSON(t, s, http.MethodPost, "/api/scan-history", gin.H{
		"user_id": 1, "product_id": 1, "action": "scanned",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true}`, rec.Body.String())

	rec = doJSON(t, s, http.MethodGet, "/api/user/1/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []historydomain.RecentEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Oatly", entries[0].Brand)

	rec = doJSON(t, s, http.MethodPost, "/api/scan-history", gin.H{"product_id": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecomputeEndpoint(t *testing.T) {
	s, db := newTestServer(t)

	require.NoError(t, db.Create(&catalogdomain.Product{
		ID: 1, Brand: "Meridian", Name: "Almond Butter", Category: catalogdomain.CategoryNutButter,
	}).Error)

	rec := doJSON(t, s, http.MethodPost, "/api/admin/recompute-scores", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var result scheduler.RecomputeResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Products)

	var score catalogdomain.ProductScore
	require.NoError(t, db.First(&score, "product_id = ?", 1).Error)
	assert.Equal(t, 50, score.HealthScore)
}

func TestProductsEndpoint(t *testing.T) {
	s, db := newTestServer(t)
	seedScored(t, db, 1, "Meridian", "Almond Butter", catalogdomain.CategoryNutButter, 90)
	seedScored(t, db, 2, "Oatly", "Oat Drink", catalogdomain.CategoryPlantBasedMilk, 70)

	rec := doJSON(t, s, http.MethodGet, "/api/products?q=almond", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []catalogdomain.SummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Meridian", products[0].BrandName)

	rec = doJSON(t, s, http.MethodGet, "/api/products?minPrice=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/products?category=Candy", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCategoriesEndpoint(t *testing.T) {
	s, db := newTestServer(t)
	seedScored(t, db, 1, "Meridian", "Almond Butter", catalogdomain.CategoryNutButter, 90)
	seedScored(t, db, 2, "Whole Earth", "Peanut Butter", catalogdomain.CategoryNutButter, 85)
	seedScored(t, db, 3, "Oatly", "Oat Drink", catalogdomain.CategoryPlantBasedMilk, 70)

	rec := doJSON(t, s, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var counts []catalogdomain.CategoryCount
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &counts))
	require.Len(t, counts, 2)
	assert.Equal(t, catalogdomain.CategoryNutButter, counts[0].Category)
	assert.Equal(t, int64(2), counts[0].Count)
}
