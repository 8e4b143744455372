package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/kossaiRedou/EasInvoice/internal/client/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

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
		log:   p.Log.Named("client.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, userID snowflake.ID, req domain.CreateRequest) (*domain.Client, error) {
	if userID == 0 {
		return nil, domain.ErrNoOwner
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Address) == "" {
		return nil, domain.ErrInvalidClient
	}

	client := domain.Client{
		ID:      s.genID.Generate(),
		UserID:  userID,
		Name:    strings.TrimSpace(req.Name),
		Address: strings.TrimSpace(req.Address),
		City:    strings.TrimSpace(req.City),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Notes:   strings.TrimSpace(req.Notes),
	}
	if err := s.repo.Insert(ctx, s.db, &client); err != nil {
		return nil, err
	}

	s.log.Info("client_created",
		zap.String("client_id", client.ID.String()),
		zap.String("user_id", userID.String()),
	)
	return &client, nil
}

func (s *Service) GetByID(ctx context.Context, userID snowflake.ID, id string) (*domain.Client, error) {
	if userID == 0 {
		return nil, domain.ErrNoOwner
	}
	clientID, err := s.parseID(id)
	if err != nil {
		return nil, err
	}

	client, err := s.repo.FindByID(ctx, s.db, userID, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return client, nil
}

func (s *Service) List(ctx context.Context, userID snowflake.ID) ([]domain.Client, error) {
	if userID == 0 {
		return nil, domain.ErrNoOwner
	}
	return s.repo.List(ctx, s.db, userID)
}

func (s *Service) Delete(ctx context.Context, userID snowflake.ID, id string) error {
	if userID == 0 {
		return domain.ErrNoOwner
	}
	clientID, err := s.parseID(id)
	if err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, s.db, userID, clientID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
