package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/vottam/vottam/internal/assistant"
	assistantdomain "github.com/vottam/vottam/internal/assistant/domain"
	"github.com/vottam/vottam/internal/catalog"
	catalogdomain "github.com/vottam/vottam/internal/catalog/domain"
	"github.com/vottam/vottam/internal/config"
	"github.com/vottam/vottam/internal/history"
	historydomain "github.com/vottam/vottam/internal/history/domain"
	"github.com/vottam/vottam/internal/insight"
	insightdomain "github.com/vottam/vottam/internal/insight/domain"
	"github.com/vottam/vottam/internal/observability"
	obsmiddleware "github.com/vottam/vottam/internal/observability/logger"
	obsmetrics "github.com/vottam/vottam/internal/observability/metrics"
	"github.com/vottam/vottam/internal/scheduler"
	"github.com/vottam/vottam/internal/swap"
	swapdomain "github.com/vottam/vottam/internal/swap/domain"
	"github.com/vottam/vottam/internal/user"
	userdomain "github.com/vottam/vottam/internal/user/domain"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	catalog.Module,
	user.Module,
	insight.Module,
	swap.Module,
	history.Module,
	assistant.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(httpMetrics.GinMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	db           *gorm.DB
	usersvc      userdomain.Service
	catalogSvc   catalogdomain.Service
	insightSvc   insightdomain.Service
	swapSvc      swapdomain.Service
	historySvc   historydomain.Service
	assistantSvc assistantdomain.Service
	obsMetrics   *obsmetrics.Metrics
	scheduler    *scheduler.Scheduler
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	DB           *gorm.DB
	Usersvc      userdomain.Service
	CatalogSvc   catalogdomain.Service
	InsightSvc   insightdomain.Service
	SwapSvc      swapdomain.Service
	HistorySvc   historydomain.Service
	AssistantSvc assistantdomain.Service
	ObsMetrics   *obsmetrics.Metrics  `optional:"true"`
	Scheduler    *scheduler.Scheduler `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		db:           p.DB,
		usersvc:      p.Usersvc,
		catalogSvc:   p.CatalogSvc,
		insightSvc:   p.InsightSvc,
		swapSvc:      p.SwapSvc,
		historySvc:   p.HistorySvc,
		assistantSvc: p.AssistantSvc,
		obsMetrics:   p.ObsMetrics,
		scheduler:    p.Scheduler,
	}

	svc.registerAPIRoutes()
	svc.registerAdminRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	api.POST("/login", s.Login)
	api.GET("/users", s.ListUsers)

	// -------- Catalog --------
	api.GET("/products", s.SearchProducts)
	api.GET("/products/category/:category", s.ListProductsByCategory)
	api.GET("/categories", s.ListCategories)

	// -------- Insight --------
	api.GET("/products/:id/swap", s.GetSwap)
	api.GET("/products/:id/breakdown", s.GetBreakdown)

	// -------- Assistant --------
	api.POST("/analyze", s.AnalyzeProduct)
	api.POST("/chat", s.Chat)
	api.POST("/chat/personalized", s.PersonalizedChat)

	// -------- History --------
	api.POST("/scan-history", s.LogScan)
	api.GET("/user/:userId/history", s.GetUserHistory)
	api.GET("/user/:userId/recommendations", s.GetUserRecommendations)
}

func (s *Server) registerAdminRoutes() {
	admin := s.engine.Group("/api/admin")

	admin.POST("/recompute-scores", s.RecomputeScores)
}
