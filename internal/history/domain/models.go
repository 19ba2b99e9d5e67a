package domain

import (
	"context"
	"errors"
	"time"

	catalogdomain "github.com/vottam/vottam/internal/catalog/domain"
	userdomain "github.com/vottam/vottam/internal/user/domain"
	"gorm.io/gorm"
)

const (
	ActionViewed    = "viewed"
	ActionScanned   = "scanned"
	ActionSwapped   = "swapped"
	ActionPurchased = "purchased"
)

// ValidAction reports whether a is a known scan action.
func ValidAction(a string) bool {
	switch a {
	case ActionViewed, ActionScanned, ActionSwapped, ActionPurchased:
		return true
	}
	return false
}

type ScanEntry struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	UserID      int64     `json:"user_id" gorm:"not null;index"`
	ProductID   *int64    `json:"product_id,omitempty"`
	ProductName string    `json:"product_name" gorm:"type:text"`
	Action      string    `json:"action" gorm:"type:text;not null"`
	ScannedAt   time.Time `json:"scanned_at" gorm:"not null;index"`
}

func (ScanEntry) TableName() string { return "scan_history" }

type LogRequest struct {
	UserID      int64  `json:"user_id"`
	ProductID   *int64 `json:"product_id"`
	ProductName string `json:"product_name"`
	Action      string `json:"action"`
}

// RecentEntry is a history row joined with product context for display.
type RecentEntry struct {
	ScanEntry
	Brand       string `json:"brand"`
	Category    string `json:"category"`
	HealthScore int    `json:"health_score"`
}

type FrequentCategory struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// RecommendationsResponse is the personalized product shelf derived from
// scan history and stored scores.
type RecommendationsResponse struct {
	Recommendations []catalogdomain.SummaryResponse `json:"recommendations"`
	BasedOn         []string                        `json:"based_on"`
	UserPreferences userdomain.Preferences          `json:"user_preferences"`
}

type Service interface {
	Log(ctx context.Context, req LogRequest) error
	Recent(ctx context.Context, userID int64, limit int) ([]RecentEntry, error)
	Recommendations(ctx context.Context, userID int64) (*RecommendationsResponse, error)
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, entry *ScanEntry) error
	Recent(ctx context.Context, db *gorm.DB, userID int64, limit int) ([]RecentEntry, error)
	FrequentCategories(ctx context.Context, db *gorm.DB, userID int64, limit int) ([]FrequentCategory, error)
}

var (
	ErrInvalidUser   = errors.New("invalid_user")
	ErrInvalidAction = errors.New("invalid_action")
)
