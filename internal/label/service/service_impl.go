package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/kossaiRedou/EasInvoice/internal/document"
	"github.com/kossaiRedou/EasInvoice/internal/forms"
	"github.com/kossaiRedou/EasInvoice/internal/label/domain"
	"github.com/kossaiRedou/EasInvoice/pkg/db"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
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
		log:   p.Log.Named("label.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

// Create derives the declared value up front, constructs the records,
// and persists them atomically. Labels carry no tax, so the declared
// value is the plain sum of line values.
func (s *Service) Create(ctx context.Context, userID snowflake.ID, form forms.LabelForm) (*domain.Label, error) {
	if userID == 0 {
		return nil, domain.ErrNoOwner
	}

	lines := make([]document.Line, 0, len(form.Items))
	for _, item := range form.Items {
		lines = append(lines, document.Line{Quantity: item.Quantity, UnitPrice: item.UnitPrice})
	}
	totals := document.Compute(lines, true, decimal.Zero)

	now := time.Now().UTC()
	label := domain.Label{
		ID:     s.genID.Generate(),
		UserID: userID,

		OrderNumber: form.OrderNumber,

		SenderName:    form.SenderName,
		SenderAddress: form.SenderAddress,
		SenderCity:    form.SenderCity,
		SenderEmail:   form.SenderEmail,
		SenderPhone:   form.SenderPhone,

		RecipientName:         form.RecipientName,
		RecipientAddress:      form.RecipientAddress,
		RecipientCity:         form.RecipientCity,
		RecipientEmail:        form.RecipientEmail,
		RecipientPhone:        form.RecipientPhone,
		RecipientInstructions: form.RecipientInstructions,

		ShippingDate: form.ShippingDate,
		Weight:       form.Weight,
		Length:       form.Length,
		Width:        form.Width,
		Height:       form.Height,

		Carrier:        form.Carrier,
		CarrierOther:   form.CarrierOther,
		TrackingNumber: form.TrackingNumber,

		IsFragile:         form.IsFragile,
		IsInsured:         form.IsInsured,
		InsuranceAmount:   form.InsuranceAmount,
		CashOnDelivery:    form.CashOnDelivery,
		SignatureRequired: form.SignatureRequired,
		RecipientMessage:  form.RecipientMessage,

		DeclaredValue: totals.Subtotal,

		Metadata:  datatypes.JSONMap{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	items := make([]domain.LabelItem, 0, len(form.Items))
	for i, item := range form.Items {
		line := document.Line{Quantity: item.Quantity, UnitPrice: item.UnitPrice}
		items = append(items, domain.LabelItem{
			ID:          s.genID.Generate(),
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitValue:   item.UnitPrice,
			LineValue:   line.Total(),
			Position:    i,
			CreatedAt:   now,
		})
	}

	if err := s.repo.InsertWithItems(ctx, s.db, &label, items); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateOrder
		}
		return nil, err
	}

	label.Items = items
	s.log.Info("label created",
		zap.String("label_id", label.ID.String()),
		zap.String("order_number", label.OrderNumber),
		zap.String("carrier", label.Carrier),
		zap.Int("items", len(items)),
	)
	return &label, nil
}

func (s *Service) GetByID(ctx context.Context, userID snowflake.ID, id string) (*domain.Label, error) {
	if userID == 0 {
		return nil, domain.ErrNoOwner
	}
	labelID, err := s.parseID(id)
	if err != nil {
		return nil, err
	}

	label, err := s.repo.FindByID(ctx, s.db, userID, labelID)
	if err != nil {
		return nil, err
	}
	if label == nil {
		return nil, domain.ErrNotFound
	}
	return label, nil
}

func (s *Service) List(ctx context.Context, userID snowflake.ID) ([]domain.Label, error) {
	if userID == 0 {
		return nil, domain.ErrNoOwner
	}
	return s.repo.List(ctx, s.db, userID)
}

func (s *Service) MarkPDFGenerated(ctx context.Context, userID snowflake.ID, id string) error {
	if userID == 0 {
		return domain.ErrNoOwner
	}
	labelID, err := s.parseID(id)
	if err != nil {
		return err
	}

	affected, err := s.repo.MarkPDFGenerated(ctx, s.db, userID, labelID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, userID snowflake.ID, id string) error {
	if userID == 0 {
		return domain.ErrNoOwner
	}
	labelID, err := s.parseID(id)
	if err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, s.db, userID, labelID)
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
