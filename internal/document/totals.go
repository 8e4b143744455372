package document

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput reports a quantity or price that cannot be parsed as a
// finite decimal.
var ErrInvalidInput = errors.New("invalid_input")

// Line is one (quantity, unit price) pair feeding the totals computation.
type Line struct {
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// Total returns the derived line amount, quantity x unit price, exact.
func (l Line) Total() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice)
}

// Totals holds the derived amounts of a document.
type Totals struct {
	Subtotal  decimal.Decimal
	VATAmount decimal.Decimal
	Total     decimal.Decimal
}

// Compute derives (subtotal, vat, total) from an ordered list of lines.
//
// Line totals and the subtotal use exact decimal arithmetic with no
// intermediate rounding. Only vat and total are rounded, to 2 decimal
// places half-up. When exempt is set the VAT amount is exactly zero
// regardless of rate. An empty list yields all zeros. Negative quantities
// or prices flow through arithmetically; sign policy belongs upstream.
func Compute(lines []Line, exempt bool, vatRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Total())
	}

	var vat decimal.Decimal
	if exempt {
		vat = decimal.Zero.Round(2)
	} else {
		vat = subtotal.Mul(vatRate).Div(decimal.NewFromInt(100)).Round(2)
	}

	return Totals{
		Subtotal:  subtotal,
		VATAmount: vat,
		Total:     subtotal.Add(vat).Round(2),
	}
}

// ParseDecimal parses a form value into a decimal, mapping failures to
// ErrInvalidInput. Empty input is the caller's concern.
func ParseDecimal(raw string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, ErrInvalidInput
	}
	return value, nil
}
