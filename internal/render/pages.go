package render

import (
	"net/url"
	"time"

	"github.com/kossaiRedou/EasInvoice/internal/document"
	"github.com/kossaiRedou/EasInvoice/internal/forms"
	invoicedomain "github.com/kossaiRedou/EasInvoice/internal/invoice/domain"
	labeldomain "github.com/kossaiRedou/EasInvoice/internal/label/domain"
)

// FormPage carries everything a document form needs: previous input
// for redisplay, field errors keyed by wire name, and the row set.
type FormPage struct {
	Title      string
	Action     string
	RowURL     string
	Prefix     string
	PriceField string
	PriceLabel string
	Values     url.Values
	Errors     map[string]string
	Rows       []RowData
	Total      int
}

// NewFormPage assembles a form page for the given kind with at least
// one empty row.
func NewFormPage(kind document.Kind, action, rowURL string, values url.Values, errs *forms.Errors) FormPage {
	page := FormPage{
		Action:     action,
		RowURL:     rowURL,
		Prefix:     kind.RowPrefix,
		PriceField: priceField(kind),
		PriceLabel: priceLabel(kind),
		Values:     values,
		Errors:     map[string]string{},
	}
	if kind.Taxed {
		page.Title = "Nouvelle facture"
	} else {
		page.Title = "Nouvelle étiquette d'expédition"
	}
	if page.Values == nil {
		page.Values = url.Values{}
	}
	if errs != nil {
		for _, fe := range errs.Fields {
			if _, seen := page.Errors[fe.Field]; !seen {
				page.Errors[fe.Field] = fe.Message
			}
		}
	}

	total := document.NextRowIndex(page.Values.Get(document.CountField(kind.RowPrefix)))
	if total == 0 {
		total = 1
	}
	for i := 0; i < total; i++ {
		page.Rows = append(page.Rows, RowData{
			Prefix:      kind.RowPrefix,
			PriceField:  page.PriceField,
			PriceLabel:  page.PriceLabel,
			Index:       i,
			Description: page.Values.Get(document.FieldName(kind.RowPrefix, i, "description")),
			Quantity:    page.Values.Get(document.FieldName(kind.RowPrefix, i, "quantity")),
			Price:       page.Values.Get(document.FieldName(kind.RowPrefix, i, page.PriceField)),
		})
	}
	page.Total = total
	return page
}

func (r *Renderer) InvoiceForm(page FormPage) (string, error) {
	return r.execute("invoice_form", page)
}

func (r *Renderer) LabelForm(page FormPage) (string, error) {
	return r.execute("label_form", page)
}

// InvoicePreview renders the read-only invoice page, including the
// computed overdue badge.
func (r *Renderer) InvoicePreview(invoice *invoicedomain.Invoice) (string, error) {
	return r.execute("invoice_view", struct {
		Invoice         *invoicedomain.Invoice
		ExemptionNotice string
		IsOverdue       bool
	}{invoice, document.VATExemptionNotice, invoice.IsOverdue(time.Now())})
}

// LabelPreview renders the read-only label page.
func (r *Renderer) LabelPreview(label *labeldomain.Label) (string, error) {
	return r.execute("label_view", label)
}
