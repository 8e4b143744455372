package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	InsertUser(ctx context.Context, db *gorm.DB, user *User) error
	FindUserByUsername(ctx context.Context, db *gorm.DB, username string) (*User, error)
	InsertSession(ctx context.Context, db *gorm.DB, session *Session) error
	FindSessionByToken(ctx context.Context, db *gorm.DB, token string) (*Session, *User, error)
	DeleteSession(ctx context.Context, db *gorm.DB, token string) error
}
