package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	FindByUser(ctx context.Context, db *gorm.DB, userID snowflake.ID) (*UserProfile, error)
	Insert(ctx context.Context, db *gorm.DB, profile *UserProfile) error
	Update(ctx context.Context, db *gorm.DB, profile *UserProfile) error
}
