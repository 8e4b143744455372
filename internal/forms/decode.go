package forms

import (
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kossaiRedou/EasInvoice/internal/document"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// decoder wraps one submission and the error accumulator. Field readers
// record failures instead of returning them so decoding always visits
// every field.
type decoder struct {
	values url.Values
	errs   *Errors
}

func newDecoder(values url.Values) *decoder {
	return &decoder{values: values, errs: &Errors{}}
}

func (d *decoder) raw(field string) string {
	return strings.TrimSpace(d.values.Get(field))
}

func (d *decoder) requiredString(field string, maxLen int) string {
	v := d.raw(field)
	if v == "" {
		d.errs.Add(field, codeRequired, "this field is required")
		return ""
	}
	if maxLen > 0 && len(v) > maxLen {
		d.errs.Add(field, codeTooLong, "value exceeds maximum length")
		return ""
	}
	return v
}

func (d *decoder) optionalString(field string, maxLen int) string {
	v := d.raw(field)
	if maxLen > 0 && len(v) > maxLen {
		d.errs.Add(field, codeTooLong, "value exceeds maximum length")
		return ""
	}
	return v
}

func (d *decoder) optionalEmail(field string) string {
	v := d.raw(field)
	if v == "" {
		return ""
	}
	if _, err := mail.ParseAddress(v); err != nil {
		d.errs.Add(field, codeInvalidEmail, "invalid email address")
		return ""
	}
	return v
}

// checkbox reports whether an HTML checkbox was ticked. Browsers omit
// unticked boxes entirely, so absence means false.
func (d *decoder) checkbox(field string) bool {
	switch strings.ToLower(d.raw(field)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

func (d *decoder) requiredDate(field string) time.Time {
	v := d.raw(field)
	if v == "" {
		d.errs.Add(field, codeRequired, "this field is required")
		return time.Time{}
	}
	parsed, err := time.Parse(dateLayout, v)
	if err != nil {
		d.errs.Add(field, codeInvalidDate, "invalid date, expected YYYY-MM-DD")
		return time.Time{}
	}
	return parsed
}

func (d *decoder) optionalDate(field string) *time.Time {
	v := d.raw(field)
	if v == "" {
		return nil
	}
	parsed, err := time.Parse(dateLayout, v)
	if err != nil {
		d.errs.Add(field, codeInvalidDate, "invalid date, expected YYYY-MM-DD")
		return nil
	}
	return &parsed
}

func (d *decoder) requiredDecimal(field string) decimal.Decimal {
	v := d.raw(field)
	if v == "" {
		d.errs.Add(field, codeRequired, "this field is required")
		return decimal.Decimal{}
	}
	parsed, err := document.ParseDecimal(v)
	if err != nil {
		d.errs.Add(field, codeInvalidValue, "invalid decimal value")
		return decimal.Decimal{}
	}
	return parsed
}

func (d *decoder) optionalDecimal(field string) *decimal.Decimal {
	v := d.raw(field)
	if v == "" {
		return nil
	}
	parsed, err := document.ParseDecimal(v)
	if err != nil {
		d.errs.Add(field, codeInvalidValue, "invalid decimal value")
		return nil
	}
	return &parsed
}

func (d *decoder) requiredInt(field string) int {
	v := d.raw(field)
	if v == "" {
		d.errs.Add(field, codeRequired, "this field is required")
		return 0
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		d.errs.Add(field, codeInvalidValue, "invalid integer value")
		return 0
	}
	return parsed
}

func (d *decoder) choice(field string, allowed []string) string {
	v := d.raw(field)
	if v == "" {
		d.errs.Add(field, codeRequired, "this field is required")
		return ""
	}
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	d.errs.Add(field, codeInvalidChoice, "value is not one of the allowed choices")
	return ""
}
