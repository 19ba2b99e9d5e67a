package service

import (
	"context"
	"strings"

	"github.com/vottam/vottam/internal/catalog/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const searchLimit = 50

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("catalog.service"),
		repo: p.Repo,
	}
}

func (s *Service) Search(ctx context.Context, req domain.SearchRequest) ([]domain.SummaryResponse, error) {
	if req.MinPrice < 0 || req.MaxPrice < 0 {
		return nil, domain.ErrInvalidPrice
	}

	filter := domain.Filter{
		Query:    strings.TrimSpace(req.Query),
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		OrderBy:  "health",
		Limit:    searchLimit,
	}
	if filter.MaxPrice == 0 {
		filter.MaxPrice = 100
	}

	// UI categories are looser than catalog categories.
	switch category := strings.TrimSpace(req.Category); category {
	case "":
	case "Vegan":
		filter.DietaryType = domain.DietaryVegan
	case "Spreads":
		filter.Category = domain.CategoryNutButter
	case "Milk Alternatives":
		filter.Category = domain.CategoryPlantBasedMilk
	default:
		if !domain.ValidCategory(category) {
			return nil, domain.ErrInvalidCategory
		}
		filter.Category = category
	}

	rows, err := s.repo.Find(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}
	return s.toSummaries(rows, true), nil
}

func (s *Service) ListByCategory(ctx context.Context, category string) ([]domain.SummaryResponse, error) {
	category = strings.TrimSpace(category)
	if !domain.ValidCategory(category) {
		return nil, domain.ErrInvalidCategory
	}

	rows, err := s.repo.Find(ctx, s.db, domain.Filter{
		Category: category,
		OrderBy:  "value",
	})
	if err != nil {
		return nil, err
	}
	return s.toSummaries(rows, false), nil
}

func (s *Service) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	return s.repo.CategoryCounts(ctx, s.db)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.SummaryResponse, error) {
	row, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	resp := row.Summary(true)
	return &resp, nil
}

func (s *Service) toSummaries(rows []domain.Row, withNutrition bool) []domain.SummaryResponse {
	out := make([]domain.SummaryResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Summary(withNutrition))
	}
	return out
}
