package profile

import (
	"github.com/kossaiRedou/EasInvoice/internal/profile/repository"
	"github.com/kossaiRedou/EasInvoice/internal/profile/service"
	"go.uber.org/fx"
)

var Module = fx.Module("profile.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
