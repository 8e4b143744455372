package migration

import (
	"github.com/bwmarrin/snowflake"
	authdomain "github.com/kossaiRedou/EasInvoice/internal/auth/domain"
	clientdomain "github.com/kossaiRedou/EasInvoice/internal/client/domain"
	"github.com/kossaiRedou/EasInvoice/internal/config"
	invoicedomain "github.com/kossaiRedou/EasInvoice/internal/invoice/domain"
	labeldomain "github.com/kossaiRedou/EasInvoice/internal/label/domain"
	profiledomain "github.com/kossaiRedou/EasInvoice/internal/profile/domain"
	"github.com/kossaiRedou/EasInvoice/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, node *snowflake.Node) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// SQLite is for local development only; AutoMigrate keeps
			// it in step without a second migration set.
			if err := conn.AutoMigrate(
				&authdomain.User{},
				&authdomain.Session{},
				&invoicedomain.Invoice{},
				&invoicedomain.InvoiceItem{},
				&labeldomain.Label{},
				&labeldomain.LabelItem{},
				&clientdomain.Client{},
				&profiledomain.UserProfile{},
			); err != nil {
				return err
			}
		}

		if cfg.SeedDemoAccount {
			return seed.EnsureDemoAccount(conn, node)
		}
		return nil
	}),
)
