// Package forms validates and type-coerces raw form submissions for both
// document kinds. Every field is coerced-or-rejected independently and all
// failures are accumulated, keyed by the wire field name, rather than
// stopping at the first.
package forms

// FieldError names one offending field and the violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Errors accumulates field-level validation failures.
type Errors struct {
	Fields []FieldError `json:"errors"`
}

func (e *Errors) Error() string {
	return "validation error"
}

func (e *Errors) Add(field, code, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Code: code, Message: message})
}

func (e *Errors) HasErrors() bool {
	return len(e.Fields) > 0
}

// OrNil returns the error value when any field failed, nil otherwise.
func (e *Errors) OrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

const (
	codeRequired      = "required"
	codeInvalidValue  = "invalid_value"
	codeInvalidDate   = "invalid_date"
	codeInvalidEmail  = "invalid_email"
	codeInvalidChoice = "invalid_choice"
	codeTooLong       = "max_length_exceeded"
)
