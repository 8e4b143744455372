package render

import (
	"net/url"
	"testing"
	"time"

	"github.com/kossaiRedou/EasInvoice/internal/document"
	invoicedomain "github.com/kossaiRedou/EasInvoice/internal/invoice/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestItemRow_FragmentResetsManagementCount(t *testing.T) {
	r := New()

	html, err := r.ItemRow(document.KindInvoice, 3)
	assert.NoError(t, err)

	assert.Contains(t, html, `name="items-3-description"`)
	assert.Contains(t, html, `name="items-3-quantity"`)
	assert.Contains(t, html, `name="items-3-unit_price"`)
	assert.Contains(t, html, `name="items-TOTAL_FORMS" value="4"`)
	assert.Contains(t, html, `hx-swap-oob="true"`)
}

func TestItemRow_LabelUsesValueField(t *testing.T) {
	r := New()

	html, err := r.ItemRow(document.KindLabel, 0)
	assert.NoError(t, err)

	assert.Contains(t, html, `name="items-0-value"`)
	assert.NotContains(t, html, `unit_price`)
}

func TestInvoiceForm_EmptySubmissionGetsOneRow(t *testing.T) {
	r := New()

	page := NewFormPage(document.KindInvoice, "/invoices", "/invoices/rows", nil, nil)
	assert.Equal(t, 1, page.Total)

	html, err := r.InvoiceForm(page)
	assert.NoError(t, err)
	assert.Contains(t, html, `name="items-TOTAL_FORMS" value="1"`)
	assert.Contains(t, html, `name="items-0-description"`)
	assert.Contains(t, html, `name="invoice_number"`)
}

func TestInvoiceForm_RedisplaysSubmittedInput(t *testing.T) {
	r := New()

	values := url.Values{}
	values.Set("from_name", "ACME SARL")
	values.Set("items-TOTAL_FORMS", "2")
	values.Set("items-0-description", "Consulting")
	values.Set("items-0-unit_price", "abc")

	page := NewFormPage(document.KindInvoice, "/invoices", "/invoices/rows", values, nil)
	assert.Equal(t, 2, page.Total)

	html, err := r.InvoiceForm(page)
	assert.NoError(t, err)
	assert.Contains(t, html, `value="ACME SARL"`)
	assert.Contains(t, html, `value="Consulting"`)
	assert.Contains(t, html, `value="abc"`)
}

func TestInvoicePreview_ShowsExemptionNotice(t *testing.T) {
	r := New()

	invoice := &invoicedomain.Invoice{
		InvoiceNumber: "FACT-001",
		InvoiceDate:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		FromName:      "ACME SARL",
		ToName:        "Client SA",
		Subtotal:      decimal.RequireFromString("25.00"),
		Total:         decimal.RequireFromString("25.00"),
		IsVATExempt:   true,
		Status:        invoicedomain.StatusDraft,
	}

	html, err := r.InvoicePreview(invoice)
	assert.NoError(t, err)
	assert.Contains(t, html, document.VATExemptionNotice)
	assert.Contains(t, html, "01/08/2026")
	assert.NotContains(t, html, "TVA (")
}
