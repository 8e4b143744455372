// Package document holds the kind-generic core shared by the invoice and
// shipping-label verticals: totals computation, the dynamic-row form
// protocol, and document numbering.
package document

import "github.com/shopspring/decimal"

// VATExemptionNotice is the statutory small-business exemption wording.
// It must appear verbatim on exempt invoices in place of the VAT line.
const VATExemptionNotice = "TVA non applicable, art. 293 B du CGI"

// Kind describes one document vertical. Both verticals share the same
// header-plus-items shape; everything that differs lives here.
type Kind struct {
	// Name identifies the kind in routes and logs.
	Name string
	// FilePrefix is the first segment of generated PDF file names.
	FilePrefix string
	// RowPrefix namespaces the dynamic item-row form fields.
	RowPrefix string
	// NumberTemplate is the default document-number suggestion template.
	NumberTemplate string
	// DefaultVATRate applies when the form leaves the rate blank. Zero for
	// kinds that carry no tax.
	DefaultVATRate decimal.Decimal
	// Taxed reports whether totals include a VAT line.
	Taxed bool
}

var (
	// KindInvoice configures the invoice vertical.
	KindInvoice = Kind{
		Name:           "invoice",
		FilePrefix:     "facture",
		RowPrefix:      "items",
		NumberTemplate: "FACT-{YYYY}{MM}{DD}-{SEQ3}",
		DefaultVATRate: decimal.NewFromInt(20),
		Taxed:          true,
	}

	// KindLabel configures the shipping-label vertical.
	KindLabel = Kind{
		Name:           "label",
		FilePrefix:     "etiquette",
		RowPrefix:      "items",
		NumberTemplate: "CMD-{YYYY}{MM}{DD}-{SEQ3}",
		Taxed:          false,
	}
)
