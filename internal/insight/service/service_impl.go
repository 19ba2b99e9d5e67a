package service

import (
	"context"
	"strconv"

	catalogdomain "github.com/vottam/vottam/internal/catalog/domain"
	"github.com/vottam/vottam/internal/insight/domain"
	"github.com/vottam/vottam/internal/scoring"
	userdomain "github.com/vottam/vottam/internal/user/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	Repo        domain.Repository
	CatalogRepo catalogdomain.Repository
	UserSvc     userdomain.Service
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	repo        domain.Repository
	catalogRepo catalogdomain.Repository
	userSvc     userdomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("insight.service"),
		repo:        p.Repo,
		catalogRepo: p.CatalogRepo,
		userSvc:     p.UserSvc,
	}
}

func (s *Service) Breakdown(ctx context.Context, productID, userID int64) (*domain.BreakdownResponse, error) {
	row, err := s.catalogRepo.FindByID(ctx, s.db, productID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}

	uc, err := s.userContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	// The stored score is ground truth; the breakdown only explains it.
	healthScore := row.HealthScore
	if !row.HasScore {
		healthScore = scoring.DefaultScore
	}

	rank, err := s.repo.Rank(ctx, s.db, row.Category, healthScore)
	if err != nil {
		return nil, err
	}

	nutrition := scoring.Nutrition{
		SugarPer100g:   row.SugarPer100g,
		SaltPer100g:    row.SaltPer100g,
		ProteinPer100g: row.ProteinPer100g,
		FiberPer100g:   row.FiberPer100g,
		HasAdditives:   row.HasAdditives,
	}

	return &domain.BreakdownResponse{
		ProductID:    strconv.FormatInt(row.ID, 10),
		ProductName:  row.Brand + " " + row.Name,
		HealthScore:  healthScore,
		UserContext:  uc,
		Breakdown:    scoring.GenerateBreakdown(nutrition, uc),
		CategoryRank: rank,
	}, nil
}

func (s *Service) userContext(ctx context.Context, userID int64) (scoring.UserContext, error) {
	if userID == 0 {
		return scoring.DefaultUserContext(), nil
	}
	prefs, err := s.userSvc.Preferences(ctx, userID)
	if err != nil {
		return scoring.UserContext{}, err
	}
	if prefs == nil {
		return scoring.DefaultUserContext(), nil
	}
	uc := scoring.DefaultUserContext()
	if prefs.Diet != "" {
		uc.Diet = prefs.Diet
	}
	if prefs.Health != "" {
		uc.Health = prefs.Health
	}
	return uc, nil
}
