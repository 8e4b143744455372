package forms

import (
	"net/url"
	"time"

	"github.com/kossaiRedou/EasInvoice/internal/document"
	"github.com/shopspring/decimal"
)

// InvoiceForm is the validated invoice header submission.
type InvoiceForm struct {
	FromName    string
	FromAddress string
	FromCity    string
	FromEmail   string
	SIRET       string
	RCS         string
	IsEI        bool

	ToName    string
	ToAddress string
	ToCity    string
	ToEmail   string

	InvoiceNumber    string
	InvoiceDate      time.Time
	ServiceDateStart *time.Time
	ServiceDateEnd   *time.Time
	DueDate          time.Time

	IsVATExempt bool
	VATRate     decimal.Decimal

	PaymentTerms    string
	LateFeeRate     *decimal.Decimal
	RecoveryFee     bool
	Autoliquidation bool
	Notes           string

	Items []Item
}

// DecodeInvoice validates a raw invoice submission, accumulating every
// field failure across both the header and the item formset.
func DecodeInvoice(values url.Values) (InvoiceForm, error) {
	d := newDecoder(values)

	form := InvoiceForm{
		FromName:    d.requiredString("from_name", 200),
		FromAddress: d.requiredString("from_address", 500),
		FromCity:    d.optionalString("from_city", 100),
		FromEmail:   d.optionalEmail("from_email"),
		SIRET:       d.optionalString("siret", 20),
		RCS:         d.optionalString("rcs", 100),
		IsEI:        d.checkbox("is_ei"),

		ToName:    d.requiredString("to_name", 200),
		ToAddress: d.requiredString("to_address", 500),
		ToCity:    d.optionalString("to_city", 100),
		ToEmail:   d.optionalEmail("to_email"),

		InvoiceNumber:    d.requiredString("invoice_number", 50),
		InvoiceDate:      d.requiredDate("invoice_date"),
		ServiceDateStart: d.optionalDate("service_date_start"),
		ServiceDateEnd:   d.optionalDate("service_date_end"),
		DueDate:          d.requiredDate("due_date"),

		IsVATExempt: d.checkbox("is_vat_exempt"),

		PaymentTerms:    d.optionalString("payment_terms", 1000),
		LateFeeRate:     d.optionalDecimal("late_fee_rate"),
		RecoveryFee:     d.checkbox("recovery_fee"),
		Autoliquidation: d.checkbox("autoliquidation"),
		Notes:           d.optionalString("notes", 2000),
	}

	if rate := d.optionalDecimal("vat_rate"); rate != nil {
		form.VATRate = *rate
	} else {
		form.VATRate = document.KindInvoice.DefaultVATRate
	}

	items, itemErrs := DecodeItems(values, document.KindInvoice.RowPrefix, "unit_price")
	form.Items = items
	d.errs.Fields = append(d.errs.Fields, itemErrs.Fields...)

	if err := d.errs.OrNil(); err != nil {
		return InvoiceForm{}, err
	}
	return form, nil
}
