package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/kossaiRedou/EasInvoice/internal/forms"
)

type Service interface {
	// Create validates nothing itself; it receives a decoded form,
	// derives all computed amounts and persists header plus items in a
	// single transaction.
	Create(ctx context.Context, userID snowflake.ID, form forms.InvoiceForm) (*Invoice, error)
	GetByID(ctx context.Context, userID snowflake.ID, id string) (*Invoice, error)
	List(ctx context.Context, userID snowflake.ID) ([]Invoice, error)
	UpdateStatus(ctx context.Context, userID snowflake.ID, id string, status Status) (*Invoice, error)
	Delete(ctx context.Context, userID snowflake.ID, id string) error
}

var (
	ErrNotFound        = errors.New("not_found")
	ErrInvalidID       = errors.New("invalid_id")
	ErrInvalidStatus   = errors.New("invalid_status")
	ErrDuplicateNumber = errors.New("duplicate_invoice_number")
	ErrNoOwner         = errors.New("missing_owner")
)
