package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/kossaiRedou/EasInvoice/internal/config"
	"github.com/kossaiRedou/EasInvoice/internal/logger"
	"github.com/kossaiRedou/EasInvoice/internal/migration"
	"github.com/kossaiRedou/EasInvoice/internal/server"
	"github.com/kossaiRedou/EasInvoice/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
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
