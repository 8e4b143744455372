package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/mail"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/kossaiRedou/EasInvoice/internal/auth/domain"
	"github.com/kossaiRedou/EasInvoice/internal/auth/password"
	"github.com/kossaiRedou/EasInvoice/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const sessionTTL = 7 * 24 * time.Hour

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("auth.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (domain.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return domain.User{}, domain.ErrInvalidUsername
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return domain.User{}, domain.ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.User{}, domain.ErrInvalidEmail
	}

	if len(req.Password) < 8 {
		return domain.User{}, domain.ErrInvalidPassword
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           s.genID.Generate(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.InsertUser(ctx, s.db, &user); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.User{}, domain.ErrUserExists
		}
		return domain.User{}, err
	}

	s.log.Info("user registered", zap.String("username", username))
	return user, nil
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResult, error) {
	user, err := s.repo.FindUserByUsername(ctx, s.db, strings.TrimSpace(req.Username))
	if err != nil {
		return domain.LoginResult{}, err
	}
	if user == nil || !password.Verify(req.Password, user.PasswordHash) {
		return domain.LoginResult{}, domain.ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return domain.LoginResult{}, err
	}

	now := time.Now().UTC()
	session := domain.Session{
		ID:        s.genID.Generate(),
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: now.Add(sessionTTL),
		CreatedAt: now,
	}

	if err := s.repo.InsertSession(ctx, s.db, &session); err != nil {
		return domain.LoginResult{}, err
	}

	return domain.LoginResult{
		User:      *user,
		RawToken:  token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *Service) Logout(ctx context.Context, rawToken string) error {
	if strings.TrimSpace(rawToken) == "" {
		return nil
	}
	return s.repo.DeleteSession(ctx, s.db, rawToken)
}

func (s *Service) Authenticate(ctx context.Context, rawToken string) (domain.User, error) {
	if strings.TrimSpace(rawToken) == "" {
		return domain.User{}, domain.ErrInvalidSession
	}

	session, user, err := s.repo.FindSessionByToken(ctx, s.db, rawToken)
	if err != nil {
		return domain.User{}, err
	}
	if session == nil || user == nil {
		return domain.User{}, domain.ErrInvalidSession
	}
	if session.Expired(time.Now().UTC()) {
		_ = s.repo.DeleteSession(ctx, s.db, rawToken)
		return domain.User{}, domain.ErrSessionExpired
	}

	return *user, nil
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
