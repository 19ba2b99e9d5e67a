package insight

import (
	"github.com/vottam/vottam/internal/insight/repository"
	"github.com/vottam/vottam/internal/insight/service"
	"go.uber.org/fx"
)

var Module = fx.Module("insight.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
