package document

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Number templates use brace tokens: {YYYY} {YY} {MM} {DD} expand from
// the issue date, {SEQ} is the raw per-owner sequence and {SEQn} zero
// pads it to n digits.
var sequenceToken = regexp.MustCompile(`\{SEQ(\d*)\}`)

// FormatNumber renders a suggested document number from a kind's
// template. Deterministic for a given date and sequence; it never
// touches the database, so callers own the uniqueness guarantee.
func FormatNumber(template string, issuedAt time.Time, seq int64) (string, error) {
	if strings.TrimSpace(template) == "" {
		return "", fmt.Errorf("empty number template")
	}
	if seq <= 0 {
		return "", fmt.Errorf("document sequence must be positive, got %d", seq)
	}

	out := strings.NewReplacer(
		"{YYYY}", issuedAt.Format("2006"),
		"{YY}", issuedAt.Format("06"),
		"{MM}", issuedAt.Format("01"),
		"{DD}", issuedAt.Format("02"),
	).Replace(template)

	out = sequenceToken.ReplaceAllStringFunc(out, func(token string) string {
		width := token[len("{SEQ") : len(token)-1]
		if width == "" {
			return strconv.FormatInt(seq, 10)
		}
		n, err := strconv.Atoi(width)
		if err != nil || n <= 0 {
			return token
		}
		return fmt.Sprintf("%0*d", n, seq)
	})

	if strings.ContainsAny(out, "{}") {
		return "", fmt.Errorf("unresolved template token in %q", out)
	}
	return out, nil
}
