// Package domain contains the recurring-client book models and
// contracts. Clients are per-user address entries used to prefill the
// invoice recipient block.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Client is a recurring customer of one user.
type Client struct {
	ID     snowflake.ID `gorm:"primaryKey" json:"id"`
	UserID snowflake.ID `gorm:"not null;index" json:"-"`

	Name    string `gorm:"type:text;not null" json:"name"`
	Address string `gorm:"type:text;not null" json:"address"`
	City    string `gorm:"type:text" json:"city"`
	Email   string `gorm:"type:text" json:"email"`
	Phone   string `gorm:"type:text" json:"phone"`
	Notes   string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Client) TableName() string { return "clients" }

// CreateRequest carries the fields a user may set on a client entry.
type CreateRequest struct {
	Name    string
	Address string
	City    string
	Email   string
	Phone   string
	Notes   string
}

type Service interface {
	Create(ctx context.Context, userID snowflake.ID, req CreateRequest) (*Client, error)
	GetByID(ctx context.Context, userID snowflake.ID, id string) (*Client, error)
	List(ctx context.Context, userID snowflake.ID) ([]Client, error)
	Delete(ctx context.Context, userID snowflake.ID, id string) error
}

var (
	ErrNotFound      = errors.New("not_found")
	ErrInvalidID     = errors.New("invalid_id")
	ErrInvalidClient = errors.New("invalid_client")
	ErrNoOwner       = errors.New("missing_owner")
)
