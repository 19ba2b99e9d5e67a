package swap

import (
	"github.com/vottam/vottam/internal/swap/repository"
	"github.com/vottam/vottam/internal/swap/service"
	"go.uber.org/fx"
)

var Module = fx.Module("swap.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
