package document

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	assert.NoError(t, err)
	return d
}

func line(t *testing.T, qty, price string) Line {
	t.Helper()
	return Line{Quantity: dec(t, qty), UnitPrice: dec(t, price)}
}

func TestCompute_RoundsOnlyVATAndTotal(t *testing.T) {
	lines := []Line{
		line(t, "2", "10.00"),
		line(t, "1", "5.005"),
	}

	got := Compute(lines, false, dec(t, "20.00"))

	// Subtotal stays exact; rounding happens at vat and total only.
	assert.True(t, got.Subtotal.Equal(dec(t, "25.005")), "subtotal = %s", got.Subtotal)
	assert.True(t, got.VATAmount.Equal(dec(t, "5.00")), "vat = %s", got.VATAmount)
	assert.True(t, got.Total.Equal(dec(t, "30.01")), "total = %s", got.Total)
}

func TestCompute_SubtotalIsOrderIndependent(t *testing.T) {
	a := []Line{line(t, "3", "9.99"), line(t, "0.5", "7.20"), line(t, "12", "0.33")}
	b := []Line{a[2], a[0], a[1]}

	rate := dec(t, "10")
	assert.True(t, Compute(a, false, rate).Subtotal.Equal(Compute(b, false, rate).Subtotal))
	assert.True(t, Compute(a, false, rate).Total.Equal(Compute(b, false, rate).Total))
}

func TestCompute_ExemptionForcesZeroVAT(t *testing.T) {
	lines := []Line{line(t, "10", "10.00")}

	for _, rate := range []string{"0", "20.00", "100"} {
		got := Compute(lines, true, dec(t, rate))
		assert.True(t, got.VATAmount.IsZero(), "rate %s", rate)
		assert.True(t, got.Total.Equal(dec(t, "100.00")), "rate %s", rate)
	}
}

func TestCompute_EmptyItemList(t *testing.T) {
	got := Compute(nil, false, dec(t, "20.00"))

	assert.True(t, got.Subtotal.IsZero())
	assert.True(t, got.VATAmount.IsZero())
	assert.True(t, got.Total.IsZero())
}

func TestCompute_NegativeLinesFlowThrough(t *testing.T) {
	lines := []Line{
		line(t, "1", "100.00"),
		line(t, "-1", "150.00"),
	}

	got := Compute(lines, false, dec(t, "20.00"))

	assert.True(t, got.Subtotal.Equal(dec(t, "-50.00")))
	assert.True(t, got.VATAmount.Equal(dec(t, "-10.00")))
	assert.True(t, got.Total.Equal(dec(t, "-60.00")))
}

func TestCompute_ManySmallLinesNoDrift(t *testing.T) {
	var lines []Line
	for i := 0; i < 100; i++ {
		lines = append(lines, line(t, "1", "0.01"))
	}

	got := Compute(lines, false, dec(t, "20.00"))

	assert.True(t, got.Subtotal.Equal(dec(t, "1.00")))
	assert.True(t, got.VATAmount.Equal(dec(t, "0.20")))
	assert.True(t, got.Total.Equal(dec(t, "1.20")))
}

func TestParseDecimal(t *testing.T) {
	v, err := ParseDecimal(" 12.34 ")
	assert.NoError(t, err)
	assert.True(t, v.Equal(dec(t, "12.34")))

	_, err = ParseDecimal("12,34")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ParseDecimal("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
