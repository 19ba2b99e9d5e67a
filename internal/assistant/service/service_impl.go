package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vottam/vottam/internal/assistant/domain"
	catalogdomain "github.com/vottam/vottam/internal/catalog/domain"
	"github.com/vottam/vottam/internal/clients/gemini"
	historydomain "github.com/vottam/vottam/internal/history/domain"
	obsmetrics "github.com/vottam/vottam/internal/observability/metrics"
	userdomain "github.com/vottam/vottam/internal/user/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	chatLimit         = 5
	personalizedLimit = 10
	historyContext    = 5
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	CatalogRepo catalogdomain.Repository
	HistoryRepo historydomain.Repository
	UserSvc     userdomain.Service
	Gemini      gemini.Client
	Metrics     *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	catalogRepo catalogdomain.Repository
	historyRepo historydomain.Repository
	userSvc     userdomain.Service
	gemini      gemini.Client
	metrics     *obsmetrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("assistant.service"),
		catalogRepo: p.CatalogRepo,
		historyRepo: p.HistoryRepo,
		userSvc:     p.UserSvc,
		gemini:      p.Gemini,
		metrics:     p.Metrics,
	}
}

func (s *Service) Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.Analysis, error) {
	productJSON, _ := json.Marshal(req.Product)
	profileJSON, _ := json.Marshal(req.Profile)

	prompt := fmt.Sprintf(`Analyze this product for a shopping assistant called VOTTAM.

User Profile: %s
Product: %s

Calculate a "Smartest Value" score (0-100) based on nutritional density vs cost.
Adjust the score +10/-10 based on the User Profile (e.g. if Diabetic and product is high sugar, lower score significantly).

Provide a verdict: "Excellent", "Good", or "Poor".
List key Positives and Negatives.

Return JSON format:
{
  "score": 85,
  "verdict": "Excellent",
  "positives": ["High Protein", "Low Sugar"],
  "negatives": ["Pricey"],
  "analysis": "Brief text explanation mentioning user constraints if applicable..."
}`, profileJSON, productJSON)

	text, err := s.gemini.GenerateText(ctx, prompt)
	if err != nil {
		s.fallback(ctx, "analyze", err)
		return s.mockAnalysis(req.Product), nil
	}

	analysis, ok := parseAnalysis(text)
	if !ok {
		s.fallback(ctx, "analyze", fmt.Errorf("unparseable analysis response"))
		return s.mockAnalysis(req.Product), nil
	}
	return analysis, nil
}

func (s *Service) Chat(ctx context.Context, query string) (*domain.ChatResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrInvalidQuery
	}

	rows, err := s.catalogRepo.Find(ctx, s.db, catalogdomain.Filter{
		Query:   query,
		OrderBy: "value",
		Limit:   chatLimit,
	})
	if err != nil {
		return nil, err
	}

	products := summarize(rows)
	if len(products) == 0 {
		return &domain.ChatResponse{
			Message:  "I couldn't find any products matching that description.",
			Products: []catalogdomain.SummaryResponse{},
		}, nil
	}

	message := s.searchInsight(ctx, query, products)
	return &domain.ChatResponse{Message: message, Products: products}, nil
}

func (s *Service) PersonalizedChat(ctx context.Context, query string, userID int64) (*domain.PersonalizedChatResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrInvalidQuery
	}

	prefs := userdomain.Preferences{}
	if p, err := s.userSvc.Preferences(ctx, userID); err != nil {
		return nil, err
	} else if p != nil {
		prefs = *p
	}

	diet := prefs.Diet
	if diet == "" {
		diet = "none specified"
	}
	goals := prefs.Health
	if goals == "" {
		goals = "general wellness"
	}

	recentlyViewed := "nothing yet"
	historySize := 0
	if userID != 0 {
		recent, err := s.historyRepo.Recent(ctx, s.db, userID, historyContext)
		if err != nil {
			return nil, err
		}
		historySize = len(recent)
		names := make([]string, 0, len(recent))
		for _, entry := range recent {
			if entry.ProductName != "" {
				names = append(names, entry.ProductName)
			}
		}
		if len(names) > 0 {
			recentlyViewed = strings.Join(names, ", ")
		}
	}

	rows, err := s.catalogRepo.Find(ctx, s.db, catalogdomain.Filter{
		Query:   query,
		OrderBy: "health",
		Limit:   personalizedLimit,
	})
	if err != nil {
		return nil, err
	}
	products := summarize(rows)

	var message string
	if len(products) == 0 {
		message = fmt.Sprintf("I couldn't find %q in our database. Try searching for milk, protein, or spreads.", query)
	} else {
		message = s.personalizedInsight(ctx, query, products, diet, goals, recentlyViewed)
	}

	if len(products) > chatLimit {
		products = products[:chatLimit]
	}

	return &domain.PersonalizedChatResponse{
		Message:  message,
		Products: products,
		Personalization: domain.Personalization{
			Diet:        diet,
			HealthGoals: goals,
			HistorySize: historySize,
		},
	}, nil
}

func (s *Service) searchInsight(ctx context.Context, query string, products []catalogdomain.SummaryResponse) string {
	top := products
	if len(top) > 3 {
		top = top[:3]
	}
	summary := make([]map[string]any, 0, len(top))
	for _, p := range top {
		summary = append(summary, map[string]any{"name": p.FoodName, "score": p.Scores.HealthScore})
	}
	summaryJSON, _ := json.Marshal(summary)

	prompt := fmt.Sprintf(`User searched for: %q
Found products: %s

Write a 1-sentence helpful shopping insight for the user. Mention the best option.`, query, summaryJSON)

	text, err := s.gemini.GenerateText(ctx, prompt)
	if err != nil {
		s.fallback(ctx, "chat", err)
		best := bestOf(products)
		return fmt.Sprintf("I found %d options. The best choice is %s with a health score of %d.",
			len(products), best.FoodName, best.Scores.HealthScore)
	}
	return text
}

func (s *Service) personalizedInsight(ctx context.Context, query string, products []catalogdomain.SummaryResponse, diet, goals, recentlyViewed string) string {
	top := products
	if len(top) > chatLimit {
		top = top[:chatLimit]
	}
	summaryJSON, _ := json.MarshalIndent(top, "", "  ")

	prompt := fmt.Sprintf(`You are VOTTAM, a personalized shopping AI assistant. Be friendly and helpful.

USER CONTEXT:
- Diet preference: %s
- Health goals: %s
- Recently viewed products: %s

USER SEARCH: %q

MATCHING PRODUCTS:
%s

INSTRUCTIONS:
1. Recommend the BEST product for THIS specific user based on their diet and health goals
2. Explain WHY it's best for them (mention their diet/health if relevant)
3. If they have scan history, acknowledge their past interests briefly
4. Keep response to 2-3 sentences max
5. Be conversational and helpful, not robotic`,
		diet, goals, recentlyViewed, query, summaryJSON)

	text, err := s.gemini.GenerateText(ctx, prompt)
	if err == nil {
		return text
	}
	s.fallback(ctx, "personalized_chat", err)

	best := bestOf(products)
	message := fmt.Sprintf("Based on your %s diet", diet)
	if !strings.EqualFold(goals, "general wellness") {
		message += fmt.Sprintf(" and %s goals", goals)
	}
	message += fmt.Sprintf(", I recommend %s with a health score of %d.", best.FoodName, best.Scores.HealthScore)
	if recentlyViewed != "nothing yet" {
		message += " Since you've been checking out similar products, this should be a great fit!"
	}
	return message
}

func (s *Service) mockAnalysis(product catalogdomain.SummaryResponse) *domain.Analysis {
	healthy := product.Nutrition != nil && product.Nutrition.Sugar < 5
	if healthy {
		return &domain.Analysis{
			Score:     88,
			Verdict:   "Excellent",
			Positives: []string{"Low Sugar", "Good Protein"},
			Negatives: []string{"Expensive"},
			Analysis:  "This is a mock AI analysis based on simple heuristics.",
		}
	}
	return &domain.Analysis{
		Score:     45,
		Verdict:   "Poor",
		Positives: []string{"Budget Friendly"},
		Negatives: []string{"High Sugar"},
		Analysis:  "This is a mock AI analysis based on simple heuristics.",
	}
}

func (s *Service) fallback(ctx context.Context, operation string, err error) {
	s.log.Warn("assistant falling back to templated response",
		zap.String("operation", operation),
		zap.Error(err),
	)
	s.metrics.RecordAssistantFallback(ctx, operation)
}

// parseAnalysis pulls the first JSON object out of a model response that
// may wrap it in prose or code fences.
func parseAnalysis(text string) (*domain.Analysis, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, false
	}

	var analysis domain.Analysis
	if err := json.Unmarshal([]byte(text[start:end+1]), &analysis); err != nil {
		return nil, false
	}
	if analysis.Verdict == "" {
		return nil, false
	}
	return &analysis, true
}

func summarize(rows []catalogdomain.Row) []catalogdomain.SummaryResponse {
	out := make([]catalogdomain.SummaryResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Summary(false))
	}
	return out
}

func bestOf(products []catalogdomain.SummaryResponse) catalogdomain.SummaryResponse {
	best := products[0]
	for _, p := range products[1:] {
		if p.Scores.HealthScore > best.Scores.HealthScore {
			best = p
		}
	}
	return best
}
