package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kossaiRedou/EasInvoice/internal/document"
	invoicedomain "github.com/kossaiRedou/EasInvoice/internal/invoice/domain"
	"github.com/shopspring/decimal"
)

type MarotoProvider struct{}

func New() Provider {
	return &MarotoProvider{}
}

func (p *MarotoProvider) GenerateInvoice(ctx context.Context, invoice *invoicedomain.Invoice) (io.Reader, error) {
	m := maroto.New(pageConfig())

	m.AddRow(12,
		text.NewCol(12, "FACTURE", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(18,
		col.New(6).Add(
			text.New("Facture n° "+invoice.InvoiceNumber, props.Text{Top: 0, Style: fontstyle.Bold}),
			text.New("Date d'émission : "+formatDate(invoice.InvoiceDate), props.Text{Top: 5}),
			text.New("Date d'échéance : "+formatDate(invoice.DueDate), props.Text{Top: 10}),
		),
		col.New(6).Add(
			text.New(servicePeriod(invoice), props.Text{Top: 0, Align: align.Right}),
		),
	)

	m.AddRow(36,
		col.New(6).Add(issuerBlock(invoice)...),
		col.New(6).Add(
			text.New("Destinataire", props.Text{Style: fontstyle.Bold}),
			text.New(invoice.ToName, props.Text{Top: 5}),
			text.New(invoice.ToAddress, props.Text{Top: 10}),
			text.New(invoice.ToCity, props.Text{Top: 15}),
			text.New(invoice.ToEmail, props.Text{Top: 20}),
		),
	)

	m.AddRow(10,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qté", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Prix unitaire", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Montant", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
	m.AddRow(2, line.NewCol(12))

	for _, item := range invoice.Items {
		m.AddRow(8,
			text.NewCol(6, item.Description, props.Text{Size: 9}),
			text.NewCol(2, formatQuantity(item.Quantity), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, formatAmount(item.UnitPrice), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, formatAmount(item.LineTotal), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(4, line.NewCol(12))
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Sous-total HT", props.Text{Size: 9}),
		text.NewCol(2, formatAmount(invoice.Subtotal), props.Text{Size: 9, Align: align.Right}),
	)
	if invoice.IsVATExempt {
		m.AddRow(8,
			col.New(4),
			text.NewCol(8, document.VATExemptionNotice, props.Text{Size: 9, Align: align.Right}),
		)
	} else {
		m.AddRow(8,
			col.New(8),
			text.NewCol(2, fmt.Sprintf("TVA (%s%%)", formatQuantity(invoice.VATRate)), props.Text{Size: 9}),
			text.NewCol(2, formatAmount(invoice.VATAmount), props.Text{Size: 9, Align: align.Right}),
		)
	}
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Total TTC", props.Text{Style: fontstyle.Bold, Size: 10}),
		text.NewCol(2, formatAmount(invoice.Total), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
	)

	for _, mention := range legalMentions(invoice) {
		m.AddRow(6,
			text.NewCol(12, mention, props.Text{Size: 8}),
		)
	}
	if invoice.Notes != "" {
		m.AddRow(12,
			text.NewCol(12, invoice.Notes, props.Text{Size: 8, Top: 4}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, &RenderError{Cause: err}
	}
	return bytes.NewReader(doc.GetBytes()), nil
}

func pageConfig() *entity.Config {
	return config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} / {total}",
			Place:   props.RightBottom,
		}).
		Build()
}

func issuerBlock(invoice *invoicedomain.Invoice) []core.Component {
	name := invoice.FromName
	if invoice.IsEI {
		name += " EI"
	}
	block := []core.Component{
		text.New("Émetteur", props.Text{Style: fontstyle.Bold}),
		text.New(name, props.Text{Top: 5}),
		text.New(invoice.FromAddress, props.Text{Top: 10}),
		text.New(invoice.FromCity, props.Text{Top: 15}),
	}
	top := 20.0
	if invoice.SIRET != "" {
		block = append(block, text.New("SIRET : "+invoice.SIRET, props.Text{Top: top}))
		top += 5
	}
	if invoice.RCS != "" {
		block = append(block, text.New("RCS : "+invoice.RCS, props.Text{Top: top}))
		top += 5
	}
	if invoice.FromEmail != "" {
		block = append(block, text.New(invoice.FromEmail, props.Text{Top: top}))
	}
	return block
}

func servicePeriod(invoice *invoicedomain.Invoice) string {
	if invoice.ServiceDateStart == nil || invoice.ServiceDateEnd == nil {
		return ""
	}
	return fmt.Sprintf("Prestation du %s au %s",
		formatDate(*invoice.ServiceDateStart), formatDate(*invoice.ServiceDateEnd))
}

func legalMentions(invoice *invoicedomain.Invoice) []string {
	var mentions []string
	if invoice.PaymentTerms != "" {
		mentions = append(mentions, "Conditions de règlement : "+invoice.PaymentTerms)
	}
	if invoice.LateFeeRate != nil {
		mentions = append(mentions,
			fmt.Sprintf("Taux de pénalités de retard : %s%%", formatQuantity(*invoice.LateFeeRate)))
	}
	if invoice.RecoveryFee {
		mentions = append(mentions,
			"Indemnité forfaitaire pour frais de recouvrement en cas de retard de paiement : 40 €")
	}
	if invoice.Autoliquidation {
		mentions = append(mentions, "Autoliquidation de la TVA par le preneur")
	}
	return mentions
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
	return value.Format("02/01/2006")
}
