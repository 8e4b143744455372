package pdf

import (
	"context"
	"errors"
	"io"

	invoicedomain "github.com/kossaiRedou/EasInvoice/internal/invoice/domain"
	labeldomain "github.com/kossaiRedou/EasInvoice/internal/label/domain"
)

// ErrEngineUnavailable is returned when PDF generation is disabled.
// Callers surface it before persisting anything that depends on the
// rendered document.
var ErrEngineUnavailable = errors.New("pdf_engine_unavailable")

// RenderError wraps a failure that happened inside the PDF engine.
// The engine diagnostic must reach the caller, it is never reduced to
// a generic server error.
type RenderError struct {
	Cause error
}

func (e *RenderError) Error() string { return "pdf render failed: " + e.Cause.Error() }

func (e *RenderError) Unwrap() error { return e.Cause }

type Provider interface {
	GenerateInvoice(ctx context.Context, invoice *invoicedomain.Invoice) (io.Reader, error)
	GenerateLabel(ctx context.Context, label *labeldomain.Label) (io.Reader, error)
}

// Unavailable stands in when the engine is switched off. Every call
// fails fast with ErrEngineUnavailable.
type Unavailable struct{}

func (Unavailable) GenerateInvoice(context.Context, *invoicedomain.Invoice) (io.Reader, error) {
	return nil, ErrEngineUnavailable
}

func (Unavailable) GenerateLabel(context.Context, *labeldomain.Label) (io.Reader, error) {
	return nil, ErrEngineUnavailable
}
