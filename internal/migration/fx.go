package migration

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"gorm.io/gorm"

	catalogdomain "github.com/vottam/vottam/internal/catalog/domain"
	historydomain "github.com/vottam/vottam/internal/history/domain"
	"github.com/vottam/vottam/internal/seed"
	userdomain "github.com/vottam/vottam/internal/user/domain"
)

// Module migrates the schema and seeds the demo data on startup so the
// service is usable out of the box for local and self-hosted setups.
var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, node *snowflake.Node) error {
		if err := conn.AutoMigrate(
			&catalogdomain.Product{},
			&catalogdomain.NutritionFacts{},
			&catalogdomain.ProductScore{},
			&userdomain.User{},
			&historydomain.ScanEntry{},
		); err != nil {
			return err
		}

		if err := seed.EnsureDemoUsers(conn, node); err != nil {
			return err
		}
		return seed.EnsureCatalog(conn)
	}),
)
