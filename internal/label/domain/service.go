package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/kossaiRedou/EasInvoice/internal/forms"
)

type Service interface {
	// Create receives a decoded form, derives the declared value and
	// persists header plus items in a single transaction.
	Create(ctx context.Context, userID snowflake.ID, form forms.LabelForm) (*Label, error)
	GetByID(ctx context.Context, userID snowflake.ID, id string) (*Label, error)
	List(ctx context.Context, userID snowflake.ID) ([]Label, error)
	// MarkPDFGenerated records that a PDF was rendered for the label.
	MarkPDFGenerated(ctx context.Context, userID snowflake.ID, id string) error
	Delete(ctx context.Context, userID snowflake.ID, id string) error
}

var (
	ErrNotFound       = errors.New("not_found")
	ErrInvalidID      = errors.New("invalid_id")
	ErrDuplicateOrder = errors.New("duplicate_order_number")
	ErrNoOwner        = errors.New("missing_owner")
)
