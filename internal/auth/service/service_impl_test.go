package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/kossaiRedou/EasInvoice/internal/auth/domain"
	"github.com/kossaiRedou/EasInvoice/internal/auth/repository"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(&domain.User{}, &domain.Session{})
	assert.NoError(t, err)

	node, err := snowflake.NewNode(3)
	assert.NoError(t, err)

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
	return svc, db
}

func registerReq() domain.RegisterRequest {
	return domain.RegisterRequest{
		Username: "demo",
		Email:    "demo@example.com",
		Password: "demo1234",
	}
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	req := registerReq()
	req.Username = " "
	_, err := svc.Register(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidUsername)

	req = registerReq()
	req.Email = "not-an-email"
	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	req = registerReq()
	req.Password = "short"
	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq())
	assert.NoError(t, err)

	req := registerReq()
	req.Email = "other@example.com"
	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestLoginAndAuthenticate(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerReq())
	assert.NoError(t, err)
	assert.NotContains(t, user.PasswordHash, "demo1234", "password must never be stored in clear")

	result, err := svc.Login(ctx, domain.LoginRequest{Username: "demo", Password: "demo1234"})
	assert.NoError(t, err)
	assert.NotEmpty(t, result.RawToken)
	assert.True(t, result.ExpiresAt.After(time.Now()))

	authed, err := svc.Authenticate(ctx, result.RawToken)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "demo", Password: "wrong-pass"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "ghost", Password: "demo1234"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogout_InvalidatesSession(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq())
	assert.NoError(t, err)

	result, err := svc.Login(ctx, domain.LoginRequest{Username: "demo", Password: "demo1234"})
	assert.NoError(t, err)

	err = svc.Logout(ctx, result.RawToken)
	assert.NoError(t, err)

	_, err = svc.Authenticate(ctx, result.RawToken)
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}

func TestAuthenticate_ExpiredSessionIsPurged(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq())
	assert.NoError(t, err)

	result, err := svc.Login(ctx, domain.LoginRequest{Username: "demo", Password: "demo1234"})
	assert.NoError(t, err)

	err = db.Model(&domain.Session{}).
		Where("token = ?", result.RawToken).
		Update("expires_at", time.Now().UTC().Add(-time.Hour)).Error
	assert.NoError(t, err)

	_, err = svc.Authenticate(ctx, result.RawToken)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)

	var count int64
	err = db.Model(&domain.Session{}).Where("token = ?", result.RawToken).Count(&count).Error
	assert.NoError(t, err)
	assert.Zero(t, count, "expired session must be deleted")
}
