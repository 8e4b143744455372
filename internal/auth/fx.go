package auth

import (
	"github.com/kossaiRedou/EasInvoice/internal/auth/repository"
	"github.com/kossaiRedou/EasInvoice/internal/auth/service"
	"github.com/kossaiRedou/EasInvoice/internal/auth/session"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
	fx.Provide(session.NewManager),
)
