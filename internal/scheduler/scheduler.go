package scheduler

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	catalogdomain "github.com/vottam/vottam/internal/catalog/domain"
	"github.com/vottam/vottam/internal/clock"
	"github.com/vottam/vottam/internal/config"
	obsmetrics "github.com/vottam/vottam/internal/observability/metrics"
	"github.com/vottam/vottam/internal/scoring"
	"go.uber.org/fx"
)

var ErrInvalidConfig = errors.New("scheduler requires db, log, clock and price config")

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Clock   clock.Clock
	Prices  *config.PriceConfigHolder
	Metrics *obsmetrics.Metrics `optional:"true"`
	Config  Config              `optional:"true"`
}

// Scheduler periodically reprices the catalog and recomputes health
// scores from the stored nutrition facts.
type Scheduler struct {
	db      *gorm.DB
	log     *zap.Logger
	cfg     Config
	clock   clock.Clock
	prices  *config.PriceConfigHolder
	metrics *obsmetrics.Metrics
}

// RecomputeResult summarizes a recompute run.
type RecomputeResult struct {
	Products int       `json:"products"`
	RanAt    time.Time `json:"ran_at"`
}

func New(p Params) (*Scheduler, error) {
	if p.DB == nil || p.Log == nil || p.Clock == nil || p.Prices == nil {
		return nil, ErrInvalidConfig
	}
	return &Scheduler{
		db:      p.DB,
		log:     p.Log.Named("scheduler").With(zap.String("component", "scheduler")),
		cfg:     p.Config.withDefaults(),
		clock:   p.Clock,
		prices:  p.Prices,
		metrics: p.Metrics,
	}, nil
}

type productRow struct {
	ID             int64
	Brand          string
	Name           string
	SugarPer100g   float64 `gorm:"column:sugar_per_100g"`
	SaltPer100g    float64 `gorm:"column:salt_per_100g"`
	ProteinPer100g float64 `gorm:"column:protein_per_100g"`
	FiberPer100g   float64 `gorm:"column:fiber_per_100g"`
	HasAdditives   bool
	HasNutrition   bool
}

// RecomputeScores reprices every product and rewrites its health score
// in a single transaction. Either every product is updated or none is.
func (s *Scheduler) RecomputeScores(ctx context.Context) (RecomputeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.JobTimeout)
	defer cancel()

	var rows []productRow
	err := s.db.WithContext(ctx).Raw(`
		SELECT p.id,
		       p.brand,
		       p.name,
		       COALESCE(n.sugar_per_100g, 0) AS sugar_per_100g,
		       COALESCE(n.salt_per_100g, 0) AS salt_per_100g,
		       COALESCE(n.protein_per_100g, 0) AS protein_per_100g,
		       COALESCE(n.fiber_per_100g, 0) AS fiber_per_100g,
		       COALESCE(n.has_additives, 0) AS has_additives,
		       (n.product_id IS NOT NULL) AS has_nutrition
		FROM products p
		LEFT JOIN nutrition_facts n ON n.product_id = p.id
	`).Scan(&rows).Error
	if err != nil {
		return RecomputeResult{}, err
	}

	priceCfg := s.prices.Get()
	now := s.clock.Now()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			price := priceCfg.PriceFor(row.Brand)

			var facts *scoring.Nutrition
			if row.HasNutrition {
				facts = &scoring.Nutrition{
					SugarPer100g:   row.SugarPer100g,
					SaltPer100g:    row.SaltPer100g,
					ProteinPer100g: row.ProteinPer100g,
					FiberPer100g:   row.FiberPer100g,
					HasAdditives:   row.HasAdditives,
				}
			}
			score := scoring.ComputeHealthScore(facts, row.Brand, row.Name)

			if err := tx.Model(&catalogdomain.Product{}).
				Where("id = ?", row.ID).
				Update("price_local_currency", price).Error; err != nil {
				return err
			}

			record := catalogdomain.ProductScore{
				ProductID:   row.ID,
				HealthScore: score,
				LastUpdated: now,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "product_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"health_score", "last_updated"}),
			}).Create(&record).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return RecomputeResult{}, err
	}

	s.metrics.RecordScoreRecompute(ctx, int64(len(rows)))
	s.log.Info("recomputed product scores",
		zap.Int("products", len(rows)),
		zap.Duration("took", time.Since(now)),
	)

	return RecomputeResult{Products: len(rows), RanAt: now}, nil
}

// RunForever recomputes on startup and then on every tick until the
// context is canceled.
func (s *Scheduler) RunForever(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.RunInterval)
	defer ticker.Stop()

	for {
		if _, err := s.RecomputeScores(ctx); err != nil {
			s.log.Warn("score recompute failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
