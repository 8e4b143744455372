package label

import (
	"github.com/kossaiRedou/EasInvoice/internal/label/repository"
	"github.com/kossaiRedou/EasInvoice/internal/label/service"
	"go.uber.org/fx"
)

var Module = fx.Module("label.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
