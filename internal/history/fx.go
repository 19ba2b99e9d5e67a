package history

import (
	"github.com/vottam/vottam/internal/history/repository"
	"github.com/vottam/vottam/internal/history/service"
	"go.uber.org/fx"
)

var Module = fx.Module("history.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
