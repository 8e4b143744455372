package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	// InsertWithItems persists the header and all items atomically.
	InsertWithItems(ctx context.Context, db *gorm.DB, invoice *Invoice, items []InvoiceItem) error
	FindByID(ctx context.Context, db *gorm.DB, userID, id snowflake.ID) (*Invoice, error)
	List(ctx context.Context, db *gorm.DB, userID snowflake.ID) ([]Invoice, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, userID, id snowflake.ID, status Status) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, userID, id snowflake.ID) (int64, error)
}
