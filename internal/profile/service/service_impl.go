package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/kossaiRedou/EasInvoice/internal/profile/domain"
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
		log:   p.Log.Named("profile.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Get(ctx context.Context, userID snowflake.ID) (*domain.UserProfile, error) {
	if userID == 0 {
		return nil, domain.ErrNoOwner
	}
	return s.repo.FindByUser(ctx, s.db, userID)
}

func (s *Service) Upsert(ctx context.Context, userID snowflake.ID, req domain.UpdateRequest) (*domain.UserProfile, error) {
	if userID == 0 {
		return nil, domain.ErrNoOwner
	}

	existing, err := s.repo.FindByUser(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		profile := domain.UserProfile{
			ID:     s.genID.Generate(),
			UserID: userID,
		}
		applyUpdate(&profile, req)
		if err := s.repo.Insert(ctx, s.db, &profile); err != nil {
			return nil, err
		}
		s.log.Info("profile_created", zap.String("user_id", userID.String()))
		return &profile, nil
	}

	applyUpdate(existing, req)
	if err := s.repo.Update(ctx, s.db, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func applyUpdate(profile *domain.UserProfile, req domain.UpdateRequest) {
	profile.CompanyName = strings.TrimSpace(req.CompanyName)
	profile.Address = strings.TrimSpace(req.Address)
	profile.City = strings.TrimSpace(req.City)
	profile.Email = strings.TrimSpace(req.Email)
	profile.SIRET = strings.TrimSpace(req.SIRET)
	profile.RCS = strings.TrimSpace(req.RCS)
	profile.IsEI = req.IsEI
	profile.Phone = strings.TrimSpace(req.Phone)
}
