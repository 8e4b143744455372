package document

import (
	"fmt"
	"strconv"
	"strings"
)

// The dynamic-row protocol keeps the client and server agreed on item-row
// indices. The client tracks a single row count N in a hidden management
// input; to add a row it posts N and receives markup for the row indexed N
// plus an out-of-band replacement of the management input holding N+1.
// Indices are dense, zero-based and never reused within one editing
// session; deleted rows leave gaps that are filtered at submission time.

// CountField returns the management input name for a row prefix,
// e.g. "items-TOTAL_FORMS".
func CountField(prefix string) string {
	return prefix + "-TOTAL_FORMS"
}

// FieldName namespaces one field of the row at index, e.g. "items-3-quantity".
func FieldName(prefix string, index int, field string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, index, field)
}

// NextRowIndex parses the client-reported row count. Absent or unparseable
// values are treated as zero; the request's row contents are never
// inspected here.
func NextRowIndex(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
