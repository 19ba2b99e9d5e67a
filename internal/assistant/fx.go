package assistant

import (
	"github.com/vottam/vottam/internal/assistant/service"
	"github.com/vottam/vottam/internal/clients/gemini"
	"go.uber.org/fx"
)

var Module = fx.Module("assistant.service",
	fx.Provide(gemini.NewFromEnv),
	fx.Provide(service.New),
)
