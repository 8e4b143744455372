// Package seed bootstraps a demo account for local environments.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/kossaiRedou/EasInvoice/internal/auth/domain"
	"github.com/kossaiRedou/EasInvoice/internal/auth/password"
	"gorm.io/gorm"
)

const (
	demoUsername = "demo"
	demoEmail    = "demo@easinvoice.local"
	demoPassword = "demo1234"
)

// EnsureDemoAccount creates the demo login if it does not exist yet.
// Idempotent across restarts.
func EnsureDemoAccount(db *gorm.DB, node *snowflake.Node) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing authdomain.User
		err := tx.Where("username = ?", demoUsername).First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hash, err := password.Hash(demoPassword)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		return tx.Create(&authdomain.User{
			ID:           node.Generate(),
			Username:     demoUsername,
			Email:        demoEmail,
			PasswordHash: hash,
			CreatedAt:    now,
			UpdatedAt:    now,
		}).Error
	})
}
