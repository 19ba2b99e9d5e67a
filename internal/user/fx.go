package user

import (
	"github.com/vottam/vottam/internal/user/repository"
	"github.com/vottam/vottam/internal/user/service"
	"go.uber.org/fx"
)

var Module = fx.Module("user.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
