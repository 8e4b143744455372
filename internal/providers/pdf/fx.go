package pdf

import (
	"github.com/kossaiRedou/EasInvoice/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Provide selects the engine from configuration. Disabling it keeps
// every other route working; only PDF downloads fail.
func Provide(cfg config.Config, log *zap.Logger) Provider {
	if !cfg.PDFEngineEnabled {
		log.Warn("pdf engine disabled, document downloads will fail")
		return Unavailable{}
	}
	return New()
}

var Module = fx.Module("providers.pdf",
	fx.Provide(Provide),
)
