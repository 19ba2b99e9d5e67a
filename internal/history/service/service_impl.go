package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/vottam/vottam/internal/catalog/domain"
	"github.com/vottam/vottam/internal/history/domain"
	userdomain "github.com/vottam/vottam/internal/user/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	recentLimit        = 20
	frequentCategories = 3
	recommendLimit     = 6
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	GenID       *snowflake.Node
	Repo        domain.Repository
	CatalogRepo catalogdomain.Repository
	UserSvc     userdomain.Service
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	genID       *snowflake.Node
	repo        domain.Repository
	catalogRepo catalogdomain.Repository
	userSvc     userdomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("history.service"),
		genID:       p.GenID,
		repo:        p.Repo,
		catalogRepo: p.CatalogRepo,
		userSvc:     p.UserSvc,
	}
}

func (s *Service) Log(ctx context.Context, req domain.LogRequest) error {
	if req.UserID == 0 {
		return domain.ErrInvalidUser
	}

	action := strings.TrimSpace(req.Action)
	if action == "" {
		action = domain.ActionViewed
	}
	if !domain.ValidAction(action) {
		return domain.ErrInvalidAction
	}

	return s.repo.Insert(ctx, s.db, &domain.ScanEntry{
		ID:          s.genID.Generate().Int64(),
		UserID:      req.UserID,
		ProductID:   req.ProductID,
		ProductName: strings.TrimSpace(req.ProductName),
		Action:      action,
		ScannedAt:   time.Now().UTC(),
	})
}

func (s *Service) Recent(ctx context.Context, userID int64, limit int) ([]domain.RecentEntry, error) {
	if userID == 0 {
		return nil, domain.ErrInvalidUser
	}
	if limit <= 0 || limit > recentLimit {
		limit = recentLimit
	}
	return s.repo.Recent(ctx, s.db, userID, limit)
}

func (s *Service) Recommendations(ctx context.Context, userID int64) (*domain.RecommendationsResponse, error) {
	if userID == 0 {
		return nil, domain.ErrInvalidUser
	}

	prefs := userdomain.Preferences{}
	if p, err := s.userSvc.Preferences(ctx, userID); err != nil {
		return nil, err
	} else if p != nil {
		prefs = *p
	}

	frequent, err := s.repo.FrequentCategories(ctx, s.db, userID, frequentCategories)
	if err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(frequent))
	for _, fc := range frequent {
		categories = append(categories, fc.Category)
	}

	dietary := ""
	if strings.EqualFold(prefs.Diet, catalogdomain.DietaryVegan) {
		dietary = catalogdomain.DietaryVegan
	}

	rows, err := s.catalogRepo.TopRated(ctx, s.db, categories, dietary, recommendLimit)
	if err != nil {
		return nil, err
	}

	recs := make([]catalogdomain.SummaryResponse, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, row.Summary(false))
	}

	return &domain.RecommendationsResponse{
		Recommendations: recs,
		BasedOn:         categories,
		UserPreferences: prefs,
	}, nil
}
