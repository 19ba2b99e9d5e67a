package domain

import (
	"context"
	"errors"

	catalogdomain "github.com/vottam/vottam/internal/catalog/domain"
	userdomain "github.com/vottam/vottam/internal/user/domain"
)

// Analysis is the product verdict shown on the product page. When the
// generative collaborator is unavailable the service synthesizes one from
// the stored score data instead.
type Analysis struct {
	Score     int      `json:"score"`
	Verdict   string   `json:"verdict"`
	Positives []string `json:"positives"`
	Negatives []string `json:"negatives"`
	Analysis  string   `json:"analysis"`
}

type AnalyzeRequest struct {
	Product catalogdomain.SummaryResponse `json:"product"`
	Profile userdomain.Preferences        `json:"userProfile"`
}

type ChatResponse struct {
	Message  string                          `json:"message"`
	Products []catalogdomain.SummaryResponse `json:"products"`
}

type Personalization struct {
	Diet        string `json:"diet"`
	HealthGoals string `json:"healthGoals"`
	HistorySize int    `json:"historySize"`
}

type PersonalizedChatResponse struct {
	Message         string                          `json:"message"`
	Products        []catalogdomain.SummaryResponse `json:"products"`
	Personalization Personalization                 `json:"personalization"`
}

type Service interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (*Analysis, error)
	Chat(ctx context.Context, query string) (*ChatResponse, error)
	PersonalizedChat(ctx context.Context, query string, userID int64) (*PersonalizedChatResponse, error)
}

var ErrInvalidQuery = errors.New("invalid_query")
