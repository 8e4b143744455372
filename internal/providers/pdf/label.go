package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	labeldomain "github.com/kossaiRedou/EasInvoice/internal/label/domain"
)

func (p *MarotoProvider) GenerateLabel(ctx context.Context, label *labeldomain.Label) (io.Reader, error) {
	m := maroto.New(pageConfig())

	m.AddRow(12,
		text.NewCol(8, "ÉTIQUETTE D'EXPÉDITION", props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
		text.NewCol(4, label.CarrierDisplay(), props.Text{
			Size:  14,
			Style: fontstyle.Bold,
			Align: align.Right,
		}),
	)

	m.AddRow(14,
		col.New(6).Add(
			text.New("Commande n° "+label.OrderNumber, props.Text{Top: 0, Style: fontstyle.Bold}),
			text.New("Date d'expédition : "+formatDate(label.ShippingDate), props.Text{Top: 5}),
		),
		col.New(6).Add(
			text.New(trackingLine(label), props.Text{Top: 0, Align: align.Right}),
		),
	)

	m.AddRow(34,
		col.New(6).Add(
			text.New("Expéditeur", props.Text{Style: fontstyle.Bold}),
			text.New(label.SenderName, props.Text{Top: 5}),
			text.New(label.SenderAddress, props.Text{Top: 10}),
			text.New(label.SenderCity, props.Text{Top: 15}),
			text.New(label.SenderPhone, props.Text{Top: 20}),
		),
		col.New(6).Add(
			text.New("Destinataire", props.Text{Style: fontstyle.Bold, Size: 12}),
			text.New(label.RecipientName, props.Text{Top: 6, Size: 12, Style: fontstyle.Bold}),
			text.New(label.RecipientAddress, props.Text{Top: 12, Size: 11}),
			text.New(label.RecipientCity, props.Text{Top: 18, Size: 11}),
			text.New(label.RecipientPhone, props.Text{Top: 24}),
		),
	)

	m.AddRow(10,
		text.NewCol(12, parcelLine(label), props.Text{Size: 10}),
	)

	for _, marker := range handlingMarkers(label) {
		m.AddRow(8,
			text.NewCol(12, marker, props.Text{Size: 10, Style: fontstyle.Bold}),
		)
	}

	if len(label.Items) > 0 {
		m.AddRow(10,
			text.NewCol(8, "Contenu déclaré", props.Text{Style: fontstyle.Bold, Size: 9}),
			text.NewCol(2, "Qté", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
			text.NewCol(2, "Valeur", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		)
		m.AddRow(2, line.NewCol(12))
		for _, item := range label.Items {
			m.AddRow(8,
				text.NewCol(8, item.Description, props.Text{Size: 9}),
				text.NewCol(2, formatQuantity(item.Quantity), props.Text{Size: 9, Align: align.Right}),
				text.NewCol(2, formatAmount(item.LineValue), props.Text{Size: 9, Align: align.Right}),
			)
		}
		m.AddRow(8,
			col.New(8),
			text.NewCol(2, "Valeur totale", props.Text{Style: fontstyle.Bold, Size: 9}),
			text.NewCol(2, formatAmount(label.DeclaredValue), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		)
	}

	if label.RecipientInstructions != "" {
		m.AddRow(10,
			text.NewCol(12, "Instructions de livraison : "+label.RecipientInstructions, props.Text{Size: 8, Top: 2}),
		)
	}
	if label.RecipientMessage != "" {
		m.AddRow(10,
			text.NewCol(12, "Message : "+label.RecipientMessage, props.Text{Size: 8, Top: 2}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, &RenderError{Cause: err}
	}
	return bytes.NewReader(doc.GetBytes()), nil
}

func trackingLine(label *labeldomain.Label) string {
	if label.TrackingNumber == "" {
		return ""
	}
	return "Suivi : " + label.TrackingNumber
}

func parcelLine(label *labeldomain.Label) string {
	return fmt.Sprintf("Poids : %s kg / Dimensions : %d x %d x %d cm",
		label.Weight.StringFixed(2), label.Length, label.Width, label.Height)
}

func handlingMarkers(label *labeldomain.Label) []string {
	var markers []string
	if label.IsFragile {
		markers = append(markers, "FRAGILE")
	}
	if label.SignatureRequired {
		markers = append(markers, "REMISE CONTRE SIGNATURE")
	}
	if label.IsInsured && label.InsuranceAmount != nil {
		markers = append(markers, "ASSURÉ : "+formatAmount(*label.InsuranceAmount))
	}
	if label.CashOnDelivery != nil {
		markers = append(markers, "CONTRE-REMBOURSEMENT : "+formatAmount(*label.CashOnDelivery))
	}
	return markers
}
