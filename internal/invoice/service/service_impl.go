package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/kossaiRedou/EasInvoice/internal/document"
	"github.com/kossaiRedou/EasInvoice/internal/forms"
	"github.com/kossaiRedou/EasInvoice/internal/invoice/domain"
	"github.com/kossaiRedou/EasInvoice/pkg/db"
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
		log:   p.Log.Named("invoice.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

// Create derives every computed amount up front, constructs the records,
// and persists them atomically. Line totals and document totals are
// computed once here, never recomputed by persistence hooks.
func (s *Service) Create(ctx context.Context, userID snowflake.ID, form forms.InvoiceForm) (*domain.Invoice, error) {
	if userID == 0 {
		return nil, domain.ErrNoOwner
	}

	lines := make([]document.Line, 0, len(form.Items))
	for _, item := range form.Items {
		lines = append(lines, document.Line{Quantity: item.Quantity, UnitPrice: item.UnitPrice})
	}
	totals := document.Compute(lines, form.IsVATExempt, form.VATRate)

	now := time.Now().UTC()
	invoice := domain.Invoice{
		ID:     s.genID.Generate(),
		UserID: userID,

		FromName:    form.FromName,
		FromAddress: form.FromAddress,
		FromCity:    form.FromCity,
		FromEmail:   form.FromEmail,
		SIRET:       form.SIRET,
		RCS:         form.RCS,
		IsEI:        form.IsEI,

		ToName:    form.ToName,
		ToAddress: form.ToAddress,
		ToCity:    form.ToCity,
		ToEmail:   form.ToEmail,

		InvoiceNumber:    form.InvoiceNumber,
		InvoiceDate:      form.InvoiceDate,
		ServiceDateStart: form.ServiceDateStart,
		ServiceDateEnd:   form.ServiceDateEnd,
		DueDate:          form.DueDate,

		Subtotal:    totals.Subtotal,
		VATRate:     form.VATRate,
		VATAmount:   totals.VATAmount,
		Total:       totals.Total,
		IsVATExempt: form.IsVATExempt,

		PaymentTerms:    form.PaymentTerms,
		LateFeeRate:     form.LateFeeRate,
		RecoveryFee:     form.RecoveryFee,
		Autoliquidation: form.Autoliquidation,

		Status: domain.StatusDraft,
		Notes:  form.Notes,

		Metadata:  datatypes.JSONMap{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	items := make([]domain.InvoiceItem, 0, len(form.Items))
	for i, item := range form.Items {
		line := document.Line{Quantity: item.Quantity, UnitPrice: item.UnitPrice}
		items = append(items, domain.InvoiceItem{
			ID:          s.genID.Generate(),
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   line.Total(),
			Position:    i,
			CreatedAt:   now,
		})
	}

	if err := s.repo.InsertWithItems(ctx, s.db, &invoice, items); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateNumber
		}
		return nil, err
	}

	invoice.Items = items
	s.log.Info("invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("number", invoice.InvoiceNumber),
		zap.Int("items", len(items)),
	)
	return &invoice, nil
}

func (s *Service) GetByID(ctx context.Context, userID snowflake.ID, id string) (*domain.Invoice, error) {
	if userID == 0 {
		return nil, domain.ErrNoOwner
	}
	invoiceID, err := s.parseID(id)
	if err != nil {
		return nil, err
	}

	invoice, err := s.repo.FindByID(ctx, s.db, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return invoice, nil
}

func (s *Service) List(ctx context.Context, userID snowflake.ID) ([]domain.Invoice, error) {
	if userID == 0 {
		return nil, domain.ErrNoOwner
	}
	return s.repo.List(ctx, s.db, userID)
}

func (s *Service) UpdateStatus(ctx context.Context, userID snowflake.ID, id string, status domain.Status) (*domain.Invoice, error) {
	if userID == 0 {
		return nil, domain.ErrNoOwner
	}
	if !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	invoiceID, err := s.parseID(id)
	if err != nil {
		return nil, err
	}

	affected, err := s.repo.UpdateStatus(ctx, s.db, userID, invoiceID, status)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, domain.ErrNotFound
	}

	updated, err := s.repo.FindByID(ctx, s.db, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// Deleted between the update and the refetch.
		return nil, domain.ErrNotFound
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, userID snowflake.ID, id string) error {
	if userID == 0 {
		return domain.ErrNoOwner
	}
	invoiceID, err := s.parseID(id)
	if err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, s.db, userID, invoiceID)
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
