package invoice

import (
	"github.com/kossaiRedou/EasInvoice/internal/invoice/repository"
	"github.com/kossaiRedou/EasInvoice/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
