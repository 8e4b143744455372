// Package render produces the HTML surface: form pages, dynamic row
// fragments and document previews. Templates are embedded so the
// binary ships self-contained.
package render

import (
	"bytes"
	"html/template"
	"time"

	"github.com/kossaiRedou/EasInvoice/internal/document"
	"github.com/shopspring/decimal"
)

type Renderer struct {
	tpl *template.Template
}

func New() *Renderer {
	funcs := template.FuncMap{
		"formatAmount":   formatAmount,
		"formatDate":     formatDate,
		"formatQuantity": formatQuantity,
		"fieldName":      document.FieldName,
		"countField":     document.CountField,
	}
	root := template.New("root").Funcs(funcs)
	for name, body := range map[string]string{
		"item_row":     itemRowTemplate,
		"row_fragment": rowFragmentTemplate,
		"invoice_form": invoiceFormTemplate,
		"label_form":   labelFormTemplate,
		"invoice_view": invoiceViewTemplate,
		"label_view":   labelViewTemplate,
	} {
		template.Must(root.New(name).Parse(body))
	}
	return &Renderer{tpl: root}
}

// RowData describes one editable item row inside a formset. Values are
// the raw submitted strings so invalid input redisplays as typed.
type RowData struct {
	Prefix      string
	PriceField  string
	PriceLabel  string
	Index       int
	Description string
	Quantity    string
	Price       string
}

// FragmentData is a RowData plus the out-of-band management counter
// reset. Total is always Index+1 so the next request allocates a fresh
// index.
type FragmentData struct {
	RowData
	Total int
}

// ItemRow renders the fragment for one additional row of the given
// document kind.
func (r *Renderer) ItemRow(kind document.Kind, index int) (string, error) {
	data := FragmentData{
		RowData: RowData{
			Prefix:     kind.RowPrefix,
			PriceField: priceField(kind),
			PriceLabel: priceLabel(kind),
			Index:      index,
		},
		Total: index + 1,
	}
	return r.execute("row_fragment", data)
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func priceField(kind document.Kind) string {
	if kind.Taxed {
		return "unit_price"
	}
	return "value"
}

func priceLabel(kind document.Kind) string {
	if kind.Taxed {
		return "Prix unitaire"
	}
	return "Valeur"
}

func formatAmount(value decimal.Decimal) string {
	return value.StringFixed(2) + " €"
}

func formatQuantity(value decimal.Decimal) string {
	if value.Equal(value.Truncate(0)) {
		return value.Truncate(0).String()
	}
	return value.String()
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.Format("02/01/2006")
}
