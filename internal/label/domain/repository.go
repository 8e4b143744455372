package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	// InsertWithItems persists the header and all items atomically.
	InsertWithItems(ctx context.Context, db *gorm.DB, label *Label, items []LabelItem) error
	FindByID(ctx context.Context, db *gorm.DB, userID, id snowflake.ID) (*Label, error)
	List(ctx context.Context, db *gorm.DB, userID snowflake.ID) ([]Label, error)
	MarkPDFGenerated(ctx context.Context, db *gorm.DB, userID, id snowflake.ID) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, userID, id snowflake.ID) (int64, error)
}
