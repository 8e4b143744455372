// Package domain contains persistence models for the shipping-label vertical.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Label is a persisted shipping label. Sender details are copied from
// the form at creation time, like the invoice issuer block.
type Label struct {
	ID     snowflake.ID `gorm:"primaryKey" json:"id"`
	UserID snowflake.ID `gorm:"not null;index;uniqueIndex:ux_label_user_order" json:"user_id"`

	OrderNumber string `gorm:"type:text;not null;uniqueIndex:ux_label_user_order" json:"order_number"`

	SenderName    string `gorm:"type:text;not null" json:"sender_name"`
	SenderAddress string `gorm:"type:text;not null" json:"sender_address"`
	SenderCity    string `gorm:"type:text;not null" json:"sender_city"`
	SenderEmail   string `gorm:"type:text" json:"sender_email"`
	SenderPhone   string `gorm:"type:text" json:"sender_phone"`

	RecipientName         string `gorm:"type:text;not null" json:"recipient_name"`
	RecipientAddress      string `gorm:"type:text;not null" json:"recipient_address"`
	RecipientCity         string `gorm:"type:text;not null" json:"recipient_city"`
	RecipientEmail        string `gorm:"type:text" json:"recipient_email"`
	RecipientPhone        string `gorm:"type:text" json:"recipient_phone"`
	RecipientInstructions string `gorm:"type:text" json:"recipient_instructions"`

	ShippingDate time.Time       `gorm:"not null" json:"shipping_date"`
	Weight       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"weight"`
	Length       int             `gorm:"not null" json:"length"`
	Width        int             `gorm:"not null" json:"width"`
	Height       int             `gorm:"not null" json:"height"`

	Carrier        string `gorm:"type:text;not null" json:"carrier"`
	CarrierOther   string `gorm:"type:text" json:"carrier_other"`
	TrackingNumber string `gorm:"type:text" json:"tracking_number"`

	IsFragile         bool             `gorm:"not null;default:false" json:"is_fragile"`
	IsInsured         bool             `gorm:"not null;default:false" json:"is_insured"`
	InsuranceAmount   *decimal.Decimal `gorm:"type:decimal(10,2)" json:"insurance_amount"`
	CashOnDelivery    *decimal.Decimal `gorm:"type:decimal(10,2)" json:"cash_on_delivery"`
	SignatureRequired bool             `gorm:"not null;default:false" json:"signature_required"`
	RecipientMessage  string           `gorm:"type:text" json:"recipient_message"`

	// DeclaredValue is the untaxed sum of item values, used for customs
	// and insurance declarations.
	DeclaredValue decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"declared_value"`

	PDFGenerated bool `gorm:"not null;default:false" json:"pdf_generated"`

	Metadata  datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time         `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time         `gorm:"not null" json:"updated_at"`

	Items []LabelItem `gorm:"foreignKey:LabelID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Label) TableName() string { return "labels" }

// CarrierDisplay resolves the carrier shown on the label.
func (l Label) CarrierDisplay() string {
	if l.Carrier == "other" && l.CarrierOther != "" {
		return l.CarrierOther
	}
	switch l.Carrier {
	case "colissimo":
		return "Colissimo"
	case "chronopost":
		return "Chronopost"
	case "mondial_relay":
		return "Mondial Relay"
	case "ups":
		return "UPS"
	case "dpd":
		return "DPD"
	default:
		return l.Carrier
	}
}

// LabelItem is one declared content line. LineValue is derived from
// quantity x unit value before construction.
type LabelItem struct {
	ID          snowflake.ID    `gorm:"primaryKey" json:"id"`
	LabelID     snowflake.ID    `gorm:"not null;index" json:"label_id"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Quantity    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:1" json:"quantity"`
	UnitValue   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_value"`
	LineValue   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"line_value"`
	Position    int             `gorm:"not null;default:0" json:"position"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
}

func (LabelItem) TableName() string { return "label_items" }
