// Package domain contains the issuer-profile models and contracts.
// A profile holds the billing identity used to prefill the issuer
// block of new invoices.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

// UserProfile is the one-per-user issuer identity.
type UserProfile struct {
	ID     snowflake.ID `gorm:"primaryKey" json:"id"`
	UserID snowflake.ID `gorm:"not null;uniqueIndex" json:"-"`

	CompanyName string `gorm:"type:text" json:"company_name"`
	Address     string `gorm:"type:text" json:"address"`
	City        string `gorm:"type:text" json:"city"`
	Email       string `gorm:"type:text" json:"email"`
	SIRET       string `gorm:"type:text" json:"siret"`
	RCS         string `gorm:"type:text" json:"rcs"`
	IsEI        bool   `gorm:"not null;default:false" json:"is_ei"`
	Phone       string `gorm:"type:text" json:"phone"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (UserProfile) TableName() string { return "user_profiles" }

// UpdateRequest carries every editable profile field. An update
// replaces the whole profile, matching a full form submission.
type UpdateRequest struct {
	CompanyName string
	Address     string
	City        string
	Email       string
	SIRET       string
	RCS         string
	IsEI        bool
	Phone       string
}

type Service interface {
	// Get returns the user's profile, or nil when none was saved yet.
	Get(ctx context.Context, userID snowflake.ID) (*UserProfile, error)
	// Upsert creates the profile on first save and replaces it after.
	Upsert(ctx context.Context, userID snowflake.ID, req UpdateRequest) (*UserProfile, error)
}

var ErrNoOwner = errors.New("missing_owner")
