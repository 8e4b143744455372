package forms

import (
	"net/url"
	"strings"

	"github.com/kossaiRedou/EasInvoice/internal/document"
	"github.com/shopspring/decimal"
)

// Item is one validated line-item row.
type Item struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// DecodeItems walks the indexed item rows of a submission.
//
// The row count comes from the management input ("<prefix>-TOTAL_FORMS").
// Rows whose delete marker is set or whose fields are all blank are
// dropped silently; gaps left by client-side deletion are expected.
// A row that is partially filled, or filled with unparseable numbers,
// is a validation failure keyed by the wire field name.
//
// priceField is the wire name of the money column: "unit_price" for
// invoices, "value" for labels.
func DecodeItems(values url.Values, prefix, priceField string) ([]Item, *Errors) {
	errs := &Errors{}
	count := document.NextRowIndex(values.Get(document.CountField(prefix)))

	items := make([]Item, 0, count)
	for i := 0; i < count; i++ {
		descField := document.FieldName(prefix, i, "description")
		qtyField := document.FieldName(prefix, i, "quantity")
		prcField := document.FieldName(prefix, i, priceField)

		desc := strings.TrimSpace(values.Get(descField))
		qtyRaw := strings.TrimSpace(values.Get(qtyField))
		prcRaw := strings.TrimSpace(values.Get(prcField))

		if deleted(values.Get(document.FieldName(prefix, i, "DELETE"))) {
			continue
		}
		if desc == "" && qtyRaw == "" && prcRaw == "" {
			continue
		}

		ok := true
		if desc == "" {
			errs.Add(descField, codeRequired, "this field is required")
			ok = false
		} else if len(desc) > 500 {
			errs.Add(descField, codeTooLong, "value exceeds maximum length")
			ok = false
		}

		qty := decimal.NewFromInt(1)
		if qtyRaw != "" {
			parsed, err := document.ParseDecimal(qtyRaw)
			if err != nil {
				errs.Add(qtyField, codeInvalidValue, "invalid decimal value")
				ok = false
			} else {
				qty = parsed
			}
		}

		var price decimal.Decimal
		if prcRaw == "" {
			errs.Add(prcField, codeRequired, "this field is required")
			ok = false
		} else {
			parsed, err := document.ParseDecimal(prcRaw)
			if err != nil {
				errs.Add(prcField, codeInvalidValue, "invalid decimal value")
				ok = false
			} else {
				price = parsed
			}
		}

		if !ok {
			continue
		}
		items = append(items, Item{Description: desc, Quantity: qty, UnitPrice: price})
	}

	return items, errs
}

func deleted(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}
