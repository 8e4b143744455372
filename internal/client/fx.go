package client

import (
	"github.com/kossaiRedou/EasInvoice/internal/client/repository"
	"github.com/kossaiRedou/EasInvoice/internal/client/service"
	"go.uber.org/fx"
)

var Module = fx.Module("client.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
