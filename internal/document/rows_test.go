package document

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextRowIndex(t *testing.T) {
	assert.Equal(t, 0, NextRowIndex(""))
	assert.Equal(t, 0, NextRowIndex("garbage"))
	assert.Equal(t, 0, NextRowIndex("-3"))
	assert.Equal(t, 1, NextRowIndex("1"))
	assert.Equal(t, 7, NextRowIndex(" 7 "))
}

func TestNextRowIndex_SequentialCallsNeverCollide(t *testing.T) {
	count := 0
	seen := map[int]bool{}
	for i := 0; i < 5; i++ {
		idx := NextRowIndex(strconv.Itoa(count))
		assert.False(t, seen[idx], "index %d allocated twice", idx)
		seen[idx] = true
		count = idx + 1
	}
	assert.Equal(t, 5, count)
}

func TestFieldNames(t *testing.T) {
	assert.Equal(t, "items-TOTAL_FORMS", CountField("items"))
	assert.Equal(t, "items-3-quantity", FieldName("items", 3, "quantity"))
}
