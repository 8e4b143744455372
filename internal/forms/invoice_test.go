package forms

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validInvoiceValues() url.Values {
	return url.Values{
		"from_name":    {"ACME SARL"},
		"from_address": {"1 rue de la Paix\n75002 Paris"},
		"to_name":      {"Client SA"},
		"to_address":   {"2 avenue des Champs\n75008 Paris"},

		"invoice_number": {"FACT-001"},
		"invoice_date":   {"2026-08-01"},
		"due_date":       {"2026-08-31"},
		"vat_rate":       {"20.00"},

		"items-TOTAL_FORMS":   {"1"},
		"items-0-description": {"Consulting"},
		"items-0-quantity":    {"2"},
		"items-0-unit_price":  {"450.00"},
	}
}

func TestDecodeInvoice_Valid(t *testing.T) {
	form, err := DecodeInvoice(validInvoiceValues())
	assert.NoError(t, err)
	assert.Equal(t, "FACT-001", form.InvoiceNumber)
	assert.Equal(t, "2026-08-01", form.InvoiceDate.Format("2006-01-02"))
	assert.True(t, form.VATRate.Equal(decimal.NewFromInt(20)))
	assert.Len(t, form.Items, 1)
	assert.False(t, form.IsVATExempt)
}

func TestDecodeInvoice_DefaultsVATRateWhenBlank(t *testing.T) {
	values := validInvoiceValues()
	values.Del("vat_rate")

	form, err := DecodeInvoice(values)
	assert.NoError(t, err)
	assert.True(t, form.VATRate.Equal(decimal.NewFromInt(20)))
}

func TestDecodeInvoice_AccumulatesAllErrors(t *testing.T) {
	values := validInvoiceValues()
	values.Del("from_name")
	values.Set("invoice_date", "31/08/2026")
	values.Set("to_email", "not-an-email")
	values.Set("vat_rate", "twenty")

	_, err := DecodeInvoice(values)
	assert.Error(t, err)

	var errs *Errors
	assert.ErrorAs(t, err, &errs)

	fields := map[string]string{}
	for _, fe := range errs.Fields {
		fields[fe.Field] = fe.Code
	}
	assert.Equal(t, "required", fields["from_name"])
	assert.Equal(t, "invalid_date", fields["invoice_date"])
	assert.Equal(t, "invalid_email", fields["to_email"])
	assert.Equal(t, "invalid_value", fields["vat_rate"])
}

func TestDecodeInvoice_Checkboxes(t *testing.T) {
	values := validInvoiceValues()
	values.Set("is_vat_exempt", "on")
	values.Set("recovery_fee", "on")
	values.Set("autoliquidation", "on")
	values.Set("is_ei", "on")

	form, err := DecodeInvoice(values)
	assert.NoError(t, err)
	assert.True(t, form.IsVATExempt)
	assert.True(t, form.RecoveryFee)
	assert.True(t, form.Autoliquidation)
	assert.True(t, form.IsEI)
}

func TestDecodeLabel_CarrierChoice(t *testing.T) {
	values := url.Values{
		"order_number":      {"CMD-042"},
		"sender_name":       {"ACME"},
		"sender_address":    {"1 rue A"},
		"sender_city":       {"Paris"},
		"recipient_name":    {"Bob"},
		"recipient_address": {"2 rue B"},
		"recipient_city":    {"Lyon"},
		"shipping_date":     {"2026-09-01"},
		"weight":            {"1.25"},
		"length":            {"30"},
		"width":             {"20"},
		"height":            {"10"},
		"carrier":           {"colissimo"},
	}

	form, err := DecodeLabel(values)
	assert.NoError(t, err)
	assert.Equal(t, "Colissimo", form.CarrierDisplay())

	values.Set("carrier", "pigeon")
	_, err = DecodeLabel(values)
	assert.Error(t, err)

	values.Set("carrier", "other")
	_, err = DecodeLabel(values)
	assert.Error(t, err) // carrier_other required

	values.Set("carrier_other", "La Poste Express")
	form, err = DecodeLabel(values)
	assert.NoError(t, err)
	assert.Equal(t, "La Poste Express", form.CarrierDisplay())
}
