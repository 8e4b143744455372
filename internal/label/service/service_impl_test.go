package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/kossaiRedou/EasInvoice/internal/forms"
	"github.com/kossaiRedou/EasInvoice/internal/label/domain"
	"github.com/kossaiRedou/EasInvoice/internal/label/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (domain.Service, *snowflake.Node) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(&domain.Label{}, &domain.LabelItem{})
	assert.NoError(t, err)

	node, err := snowflake.NewNode(2)
	assert.NoError(t, err)

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
	return svc, node
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	assert.NoError(t, err)
	return d
}

func labelForm(t *testing.T, orderNumber string) forms.LabelForm {
	t.Helper()
	return forms.LabelForm{
		OrderNumber:      orderNumber,
		SenderName:       "ACME SARL",
		SenderAddress:    "1 rue de la Paix",
		SenderCity:       "75001 Paris",
		RecipientName:    "Client SA",
		RecipientAddress: "2 avenue des Champs",
		RecipientCity:    "69001 Lyon",
		ShippingDate:     time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Weight:           dec(t, "1.50"),
		Length:           30,
		Width:            20,
		Height:           10,
		Carrier:          "colissimo",
		Items: []forms.Item{
			{Description: "Mug", Quantity: dec(t, "3"), UnitPrice: dec(t, "12.50")},
			{Description: "Poster", Quantity: dec(t, "1"), UnitPrice: dec(t, "8.00")},
		},
	}
}

func TestCreate_DerivesDeclaredValue(t *testing.T) {
	svc, node := setupService(t)
	owner := node.Generate()

	created, err := svc.Create(context.Background(), owner, labelForm(t, "CMD-001"))
	assert.NoError(t, err)
	assert.False(t, created.PDFGenerated)
	assert.True(t, created.DeclaredValue.Equal(dec(t, "45.50")), "declared = %s", created.DeclaredValue)

	got, err := svc.GetByID(context.Background(), owner, created.ID.String())
	assert.NoError(t, err)
	assert.Len(t, got.Items, 2)
	for _, item := range got.Items {
		assert.True(t, item.LineValue.Equal(item.Quantity.Mul(item.UnitValue)),
			"line_value must stay derived for %q", item.Description)
	}
}

func TestCreate_DuplicateOrderPerOwner(t *testing.T) {
	svc, node := setupService(t)
	owner := node.Generate()
	other := node.Generate()

	_, err := svc.Create(context.Background(), owner, labelForm(t, "CMD-002"))
	assert.NoError(t, err)

	_, err = svc.Create(context.Background(), owner, labelForm(t, "CMD-002"))
	assert.ErrorIs(t, err, domain.ErrDuplicateOrder)

	_, err = svc.Create(context.Background(), other, labelForm(t, "CMD-002"))
	assert.NoError(t, err)
}

func TestMarkPDFGenerated(t *testing.T) {
	svc, node := setupService(t)
	owner := node.Generate()

	created, err := svc.Create(context.Background(), owner, labelForm(t, "CMD-003"))
	assert.NoError(t, err)

	err = svc.MarkPDFGenerated(context.Background(), owner, created.ID.String())
	assert.NoError(t, err)

	got, err := svc.GetByID(context.Background(), owner, created.ID.String())
	assert.NoError(t, err)
	assert.True(t, got.PDFGenerated)

	err = svc.MarkPDFGenerated(context.Background(), node.Generate(), created.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByID_ForeignOwnerIsNotFound(t *testing.T) {
	svc, node := setupService(t)
	owner := node.Generate()

	created, err := svc.Create(context.Background(), owner, labelForm(t, "CMD-004"))
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), node.Generate(), created.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_CascadesToItems(t *testing.T) {
	svc, node := setupService(t)
	owner := node.Generate()

	created, err := svc.Create(context.Background(), owner, labelForm(t, "CMD-005"))
	assert.NoError(t, err)

	err = svc.Delete(context.Background(), owner, created.ID.String())
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), owner, created.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCarrierDisplay(t *testing.T) {
	label := domain.Label{Carrier: "mondial_relay"}
	assert.Equal(t, "Mondial Relay", label.CarrierDisplay())

	label = domain.Label{Carrier: "other", CarrierOther: "La Poste Pro"}
	assert.Equal(t, "La Poste Pro", label.CarrierDisplay())
}

func TestCreate_ItemInsertFailureRollsBackHeader(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&domain.Label{}, &domain.LabelItem{}))

	node, err := snowflake.NewNode(2)
	assert.NoError(t, err)
	svc := New(Params{DB: db, Log: zap.NewNop(), GenID: node, Repo: repository.Provide()})

	// Without the item table every item insert fails mid-transaction.
	assert.NoError(t, db.Migrator().DropTable(&domain.LabelItem{}))

	_, err = svc.Create(context.Background(), snowflake.ID(42), labelForm(t, "CMD-ROLLBACK"))
	assert.Error(t, err)

	var count int64
	assert.NoError(t, db.Model(&domain.Label{}).Count(&count).Error)
	assert.Zero(t, count, "header must not survive an item failure")
}
