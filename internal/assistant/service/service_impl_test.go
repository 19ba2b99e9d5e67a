package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vottam/vottam/internal/assistant/domain"
	catalogdomain "github.com/vottam/vottam/internal/catalog/domain"
	catalogrepo "github.com/vottam/vottam/internal/catalog/repository"
	"github.com/vottam/vottam/internal/clients/gemini"
	historydomain "github.com/vottam/vottam/internal/history/domain"
	historyrepo "github.com/vottam/vottam/internal/history/repository"
	userdomain "github.com/vottam/vottam/internal/user/domain"
	userrepo "github.com/vottam/vottam/internal/user/repository"
	usersvc "github.com/vottam/vottam/internal/user/service"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// stubGemini replays a canned response or error without touching the
// network.
type stubGemini struct {
	text string
	err  error
}

func (s *stubGemini) Enabled() bool { return s.err == nil }

func (s *stubGemini) GenerateText(ctx context.Context, prompt string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func disabledGemini() gemini.Client {
	return &stubGemini{err: gemini.ErrDisabled}
}

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
		&historydomain.ScanEntry{},
	))
	return db
}

func newService(t *testing.T, db *gorm.DB, g gemini.Client) domain.Service {
	t.Helper()

	users := usersvc.New(usersvc.Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: userrepo.Provide(),
	})
	return New(Params{
		DB:          db,
		Log:         zap.NewNop(),
		CatalogRepo: catalogrepo.Provide(),
		HistoryRepo: historyrepo.Provide(),
		UserSvc:     users,
		Gemini:      g,
	})
}

func seedScored(t *testing.T, db *gorm.DB, id int64, brand, name, category string, health int) {
	t.Helper()
	require.NoError(t, db.Create(&catalogdomain.Product{
		ID: id, ExternalID: fmt.Sprintf("p%d", id), Brand: brand, Name: name, Category: category,
	}).Error)
	require.NoError(t, db.Create(&catalogdomain.ProductScore{
		ProductID: id, HealthScore: health, SmartestValueScore: float64(health),
	}).Error)
}

func TestChat_RejectsBlankQuery(t *testing.T) {
	svc := newService(t, newTestDB(t), disabledGemini())

	_, err := svc.Chat(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)
}

func TestChat_NoMatches(t *testing.T) {
	svc := newService(t, newTestDB(t), disabledGemini())

	out, err := svc.Chat(context.Background(), "unobtanium")
	require.NoError(t, err)
	assert.Equal(t, "I couldn't find any products matching that description.", out.Message)
	assert.Empty(t, out.Products)
}

func TestChat_FallbackNamesBestOption(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db, disabledGemini())

	seedScored(t, db, 1, "Oatly", "Oat Drink", catalogdomain.CategoryPlantBasedMilk, 70)
	seedScored(t, db, 2, "Alpro", "Oat Unsweetened", catalogdomain.CategoryPlantBasedMilk, 85)

	out, err := svc.Chat(context.Background(), "oat")
	require.NoError(t, err)
	assert.Len(t, out.Products, 2)
	assert.Equal(t, "I found 2 options. The best choice is Alpro Oat Unsweetened with a health score of 85.", out.Message)
}

func TestChat_UsesGeneratedInsightWhenAvailable(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db, &stubGemini{text: "Alpro is your best bet."})

	seedScored(t, db, 1, "Alpro", "Oat Unsweetened", catalogdomain.CategoryPlantBasedMilk, 85)

	out, err := svc.Chat(context.Background(), "oat")
	require.NoError(t, err)
	assert.Equal(t, "Alpro is your best bet.", out.Message)
}

func TestAnalyze_MockHeuristicBranches(t *testing.T) {
	svc := newService(t, newTestDB(t), disabledGemini())

	lowSugar, err := svc.Analyze(context.Background(), domain.AnalyzeRequest{
		Product: catalogdomain.SummaryResponse{
			FoodName:  "Meridian Almond Butter",
			Nutrition: &catalogdomain.NutritionView{Sugar: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 88, lowSugar.Score)
	assert.Equal(t, "Excellent", lowSugar.Verdict)

	highSugar, err := svc.Analyze(context.Background(), domain.AnalyzeRequest{
		Product: catalogdomain.SummaryResponse{
			FoodName:  "Sugar Bomb",
			Nutrition: &catalogdomain.NutritionView{Sugar: 22},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 45, highSugar.Score)
	assert.Equal(t, "Poor", highSugar.Verdict)

	noNutrition, err := svc.Analyze(context.Background(), domain.AnalyzeRequest{
		Product: catalogdomain.SummaryResponse{FoodName: "Mystery"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Poor", noNutrition.Verdict)
}

func TestAnalyze_ParsesFencedJSON(t *testing.T) {
	svc := newService(t, newTestDB(t), &stubGemini{
		text: "Here you go:\n```json\n{\"score\": 72, \"verdict\": \"Good\", \"positives\": [\"High Fiber\"], \"negatives\": [], \"analysis\": \"Solid choice.\"}\n```",
	})

	out, err := svc.Analyze(context.Background(), domain.AnalyzeRequest{
		Product: catalogdomain.SummaryResponse{FoodName: "Meridian Almond Butter"},
	})
	require.NoError(t, err)
	assert.Equal(t, 72, out.Score)
	assert.Equal(t, "Good", out.Verdict)
	assert.Equal(t, []string{"High Fiber"}, out.Positives)
}

func TestAnalyze_UnparseableResponseFallsBack(t *testing.T) {
	svc := newService(t, newTestDB(t), &stubGemini{text: "sorry, no JSON here"})

	out, err := svc.Analyze(context.Background(), domain.AnalyzeRequest{
		Product: catalogdomain.SummaryResponse{
			FoodName:  "Meridian Almond Butter",
			Nutrition: &catalogdomain.NutritionView{Sugar: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 88, out.Score)
}

func TestPersonalizedChat_FallbackMentionsDietAndGoals(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db, disabledGemini())

	require.NoError(t, db.Create(&userdomain.User{
		ID: 1, Username: "gourav", PasswordHash: "x",
		Preferences: datatypes.JSONMap{"diet": "Vegan", "health": "Diabetic"},
	}).Error)
	seedScored(t, db, 1, "Alpro", "Oat Unsweetened", catalogdomain.CategoryPlantBasedMilk, 85)

	out, err := svc.PersonalizedChat(context.Background(), "oat", 1)
	require.NoError(t, err)
	assert.Contains(t, out.Message, "Vegan diet")
	assert.Contains(t, out.Message, "Diabetic goals")
	assert.Contains(t, out.Message, "Alpro Oat Unsweetened")
	assert.Equal(t, "Vegan", out.Personalization.Diet)
	assert.Equal(t, "Diabetic", out.Personalization.HealthGoals)
	assert.Equal(t, 0, out.Personalization.HistorySize)
}

func TestPersonalizedChat_AnonymousDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db, disabledGemini())

	seedScored(t, db, 1, "Alpro", "Oat Unsweetened", catalogdomain.CategoryPlantBasedMilk, 85)

	out, err := svc.PersonalizedChat(context.Background(), "oat", 0)
	require.NoError(t, err)
	assert.Equal(t, "none specified", out.Personalization.Diet)
	assert.Equal(t, "general wellness", out.Personalization.HealthGoals)
	// "general wellness" goals are not echoed back in the message.
	assert.NotContains(t, out.Message, "general wellness goals")
}

func TestPersonalizedChat_NoMatches(t *testing.T) {
	svc := newService(t, newTestDB(t), disabledGemini())

	out, err := svc.PersonalizedChat(context.Background(), "unobtanium", 0)
	require.NoError(t, err)
	assert.Equal(t, `I couldn't find "unobtanium" in our database. Try searching for milk, protein, or spreads.`, out.Message)
	assert.Empty(t, out.Products)
}

func TestPersonalizedChat_AcknowledgesHistory(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db, disabledGemini())

	seedScored(t, db, 1, "Alpro", "Oat Unsweetened", catalogdomain.CategoryPlantBasedMilk, 85)
	pid := int64(1)
	require.NoError(t, db.Create(&historydomain.ScanEntry{
		ID: 1, UserID: 7, ProductID: &pid, ProductName: "Alpro Oat Unsweetened", Action: historydomain.ActionScanned,
	}).Error)

	out, err := svc.PersonalizedChat(context.Background(), "oat", 7)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Personalization.HistorySize)
	assert.Contains(t, out.Message, "great fit")
}
