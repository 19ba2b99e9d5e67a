package config

import "go.uber.org/fx"

// Module provides application and pricing configuration.
var Module = fx.Module("config",
	fx.Provide(
		Load,
		NewPriceConfigHolder,
	),
)
