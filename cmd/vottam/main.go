package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/vottam/vottam/internal/clock"
	"github.com/vottam/vottam/internal/config"
	"github.com/vottam/vottam/internal/migration"
	"github.com/vottam/vottam/internal/observability"
	"github.com/vottam/vottam/internal/scheduler"
	"github.com/vottam/vottam/internal/server"
	"github.com/vottam/vottam/pkg/db"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,

		migration.Module,
		scheduler.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
