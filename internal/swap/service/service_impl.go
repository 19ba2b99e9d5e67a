package service

import (
	"context"
	"fmt"
	"strconv"

	catalogdomain "github.com/vottam/vottam/internal/catalog/domain"
	"github.com/vottam/vottam/internal/scoring"
	"github.com/vottam/vottam/internal/swap/domain"
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
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	repo        domain.Repository
	catalogRepo catalogdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("swap.service"),
		repo:        p.Repo,
		catalogRepo: p.CatalogRepo,
	}
}

func (s *Service) FindSwap(ctx context.Context, productID int64) (*domain.Result, error) {
	original, err := s.catalogRepo.FindByID(ctx, s.db, productID)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, domain.ErrNotFound
	}

	originalScore := original.HealthScore
	if !original.HasScore {
		originalScore = scoring.DefaultScore
	}

	// Same brand wins outright, even over a higher-scoring cross-brand
	// candidate.
	candidate, err := s.repo.BestSameBrand(ctx, s.db, original.Category, original.Brand, originalScore, original.ID)
	if err != nil {
		return nil, err
	}
	swapType := domain.SwapTypeSameBrand
	reason := "Same brand, healthier recipe."

	if candidate == nil {
		candidate, err = s.repo.BestCrossBrand(ctx, s.db, original.Category, originalScore+domain.CrossBrandMargin, original.ID)
		if err != nil {
			return nil, err
		}
		if candidate == nil {
			return nil, nil // already the best choice
		}
		swapType = domain.SwapTypeCrossBrand
		reason = fmt.Sprintf("Significantly healthier (+%d pts) option", candidate.HealthScore-originalScore)
	}

	if candidate.Brand == original.Brand {
		swapType = domain.SwapTypeSameBrand
	}

	return &domain.Result{
		ProductID:    strconv.FormatInt(candidate.ID, 10),
		Brand:        candidate.Brand,
		Name:         candidate.Name,
		ProductImage: candidate.ImageURL,
		HealthScore:  candidate.HealthScore,
		ScoreDelta:   candidate.HealthScore - originalScore,
		SwapType:     swapType,
		Reason:       reason,
		Reasons:      compareReasons(original, candidate),
	}, nil
}

// compareReasons lists only true improvements, each guarded independently.
// Zero to four reasons are possible.
func compareReasons(original *catalogdomain.Row, candidate *domain.Candidate) []string {
	reasons := make([]string, 0, 4)

	if original.HasNutrition && candidate.HasNutrition {
		if candidate.SugarPer100g < original.SugarPer100g {
			reasons = append(reasons, fmt.Sprintf("Less Sugar (%sg vs %sg)",
				trimFloat(candidate.SugarPer100g), trimFloat(original.SugarPer100g)))
		}
		if candidate.ProteinPer100g > original.ProteinPer100g {
			reasons = append(reasons, fmt.Sprintf("More Protein (%sg vs %sg)",
				trimFloat(candidate.ProteinPer100g), trimFloat(original.ProteinPer100g)))
		}
		if !candidate.HasAdditives && original.HasAdditives {
			reasons = append(reasons, "No Additives (Clean Label)")
		}
	}
	if candidate.PriceLocalCurrency < original.PriceLocalCurrency {
		reasons = append(reasons, "Cheaper Price")
	}

	return reasons
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
