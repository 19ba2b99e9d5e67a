package catalog

import (
	"github.com/vottam/vottam/internal/catalog/repository"
	"github.com/vottam/vottam/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
