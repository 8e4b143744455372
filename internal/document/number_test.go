package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	issued := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	got, err := FormatNumber("FACT-{YYYY}{MM}{DD}-{SEQ3}", issued, 7)
	assert.NoError(t, err)
	assert.Equal(t, "FACT-20260831-007", got)

	got, err = FormatNumber("INV/{YY}/{SEQ}", issued, 42)
	assert.NoError(t, err)
	assert.Equal(t, "INV/26/42", got)
}

func TestFormatNumber_Errors(t *testing.T) {
	issued := time.Now()

	_, err := FormatNumber("", issued, 1)
	assert.Error(t, err)

	_, err = FormatNumber("FACT-{SEQ}", issued, 0)
	assert.Error(t, err)

	_, err = FormatNumber("FACT-{NOPE}", issued, 1)
	assert.Error(t, err)
}
