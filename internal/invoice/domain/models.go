// Package domain contains persistence models for the invoice vertical.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Status represents invoice lifecycle states. Transitions are
// unconstrained: any status may move to any other.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusPaid      Status = "paid"
	StatusOverdue   Status = "overdue"
	StatusCancelled Status = "cancelled"
)

// ValidStatus reports whether s belongs to the closed status enumeration.
func ValidStatus(s Status) bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue, StatusCancelled:
		return true
	default:
		return false
	}
}

// Invoice is a persisted invoice header. The issuer block is a copy of
// the owner's details at creation time, so later profile edits do not
// rewrite history.
type Invoice struct {
	ID     snowflake.ID `gorm:"primaryKey" json:"id"`
	UserID snowflake.ID `gorm:"not null;index;uniqueIndex:ux_invoice_user_number" json:"user_id"`

	FromName    string `gorm:"type:text;not null" json:"from_name"`
	FromAddress string `gorm:"type:text;not null" json:"from_address"`
	FromCity    string `gorm:"type:text" json:"from_city"`
	FromEmail   string `gorm:"type:text" json:"from_email"`
	SIRET       string `gorm:"type:text" json:"siret"`
	RCS         string `gorm:"type:text" json:"rcs"`
	IsEI        bool   `gorm:"not null;default:false" json:"is_ei"`

	ToName    string `gorm:"type:text;not null" json:"to_name"`
	ToAddress string `gorm:"type:text;not null" json:"to_address"`
	ToCity    string `gorm:"type:text" json:"to_city"`
	ToEmail   string `gorm:"type:text" json:"to_email"`

	InvoiceNumber    string     `gorm:"type:text;not null;uniqueIndex:ux_invoice_user_number" json:"invoice_number"`
	InvoiceDate      time.Time  `gorm:"not null" json:"invoice_date"`
	ServiceDateStart *time.Time `json:"service_date_start"`
	ServiceDateEnd   *time.Time `json:"service_date_end"`
	DueDate          time.Time  `gorm:"not null" json:"due_date"`

	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"subtotal"`
	VATRate     decimal.Decimal `gorm:"type:decimal(5,2);not null;default:20" json:"vat_rate"`
	VATAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"vat_amount"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total"`
	IsVATExempt bool            `gorm:"not null;default:false" json:"is_vat_exempt"`

	PaymentTerms    string           `gorm:"type:text" json:"payment_terms"`
	LateFeeRate     *decimal.Decimal `gorm:"type:decimal(5,2)" json:"late_fee_rate"`
	RecoveryFee     bool             `gorm:"not null;default:true" json:"recovery_fee"`
	Autoliquidation bool             `gorm:"not null;default:false" json:"autoliquidation"`

	Status Status `gorm:"type:text;not null;default:'draft'" json:"status"`
	Notes  string `gorm:"type:text" json:"notes"`

	Metadata  datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time         `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time         `gorm:"not null" json:"updated_at"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Invoice) TableName() string { return "invoices" }

// IsOverdue is a display-time derivation, never stored: an invoice past
// its due date reads as overdue unless it is already paid or cancelled.
func (i Invoice) IsOverdue(today time.Time) bool {
	if i.Status == StatusPaid || i.Status == StatusCancelled {
		return false
	}
	due := time.Date(i.DueDate.Year(), i.DueDate.Month(), i.DueDate.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return due.Before(day)
}

// InvoiceItem is one line of an invoice. LineTotal is derived from
// quantity x unit price before construction and is never set directly.
type InvoiceItem struct {
	ID          snowflake.ID    `gorm:"primaryKey" json:"id"`
	InvoiceID   snowflake.ID    `gorm:"not null;index" json:"invoice_id"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Quantity    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:1" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"line_total"`
	Position    int             `gorm:"not null;default:0" json:"position"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
}

func (InvoiceItem) TableName() string { return "invoice_items" }
