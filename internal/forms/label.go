package forms

import (
	"net/url"
	"time"

	"github.com/kossaiRedou/EasInvoice/internal/document"
	"github.com/shopspring/decimal"
)

// Carriers accepted by the label form. "other" requires carrier_other.
var Carriers = []string{"colissimo", "chronopost", "mondial_relay", "ups", "dpd", "other"}

// LabelForm is the validated shipping-label submission.
type LabelForm struct {
	OrderNumber string

	SenderName    string
	SenderAddress string
	SenderCity    string
	SenderEmail   string
	SenderPhone   string

	RecipientName         string
	RecipientAddress      string
	RecipientCity         string
	RecipientEmail        string
	RecipientPhone        string
	RecipientInstructions string

	ShippingDate time.Time
	Weight       decimal.Decimal
	Length       int
	Width        int
	Height       int

	Carrier        string
	CarrierOther   string
	TrackingNumber string

	IsFragile         bool
	IsInsured         bool
	InsuranceAmount   *decimal.Decimal
	CashOnDelivery    *decimal.Decimal
	SignatureRequired bool
	RecipientMessage  string

	Items []Item
}

// DecodeLabel validates a raw shipping-label submission.
func DecodeLabel(values url.Values) (LabelForm, error) {
	d := newDecoder(values)

	form := LabelForm{
		OrderNumber: d.requiredString("order_number", 100),

		SenderName:    d.requiredString("sender_name", 200),
		SenderAddress: d.requiredString("sender_address", 500),
		SenderCity:    d.requiredString("sender_city", 100),
		SenderEmail:   d.optionalEmail("sender_email"),
		SenderPhone:   d.optionalString("sender_phone", 20),

		RecipientName:         d.requiredString("recipient_name", 200),
		RecipientAddress:      d.requiredString("recipient_address", 500),
		RecipientCity:         d.requiredString("recipient_city", 100),
		RecipientEmail:        d.optionalEmail("recipient_email"),
		RecipientPhone:        d.optionalString("recipient_phone", 20),
		RecipientInstructions: d.optionalString("recipient_instructions", 200),

		ShippingDate: d.requiredDate("shipping_date"),
		Weight:       d.requiredDecimal("weight"),
		Length:       d.requiredInt("length"),
		Width:        d.requiredInt("width"),
		Height:       d.requiredInt("height"),

		Carrier:        d.choice("carrier", Carriers),
		CarrierOther:   d.optionalString("carrier_other", 100),
		TrackingNumber: d.optionalString("tracking_number", 100),

		IsFragile:         d.checkbox("is_fragile"),
		IsInsured:         d.checkbox("is_insured"),
		InsuranceAmount:   d.optionalDecimal("insurance_amount"),
		CashOnDelivery:    d.optionalDecimal("cash_on_delivery"),
		SignatureRequired: d.checkbox("signature_required"),
		RecipientMessage:  d.optionalString("recipient_message", 100),
	}

	if form.Carrier == "other" && form.CarrierOther == "" {
		d.errs.Add("carrier_other", codeRequired, "this field is required when carrier is other")
	}

	items, itemErrs := DecodeItems(values, document.KindLabel.RowPrefix, "value")
	form.Items = items
	d.errs.Fields = append(d.errs.Fields, itemErrs.Fields...)

	if err := d.errs.OrNil(); err != nil {
		return LabelForm{}, err
	}
	return form, nil
}

// CarrierDisplay returns the display name of the chosen carrier.
func (f LabelForm) CarrierDisplay() string {
	if f.Carrier == "other" && f.CarrierOther != "" {
		return f.CarrierOther
	}
	switch f.Carrier {
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
		return f.Carrier
	}
}
