package orders

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-\d+-[A-Z0-9]{7}$`)

func TestOrderNumberFormat(t *testing.T) {
	require.Regexp(t, orderNumberPattern, NewOrderNumber())
}

func TestOrderNumbersDistinctWithinMillisecond(t *testing.T) {
	// a tight loop issues many numbers inside the same millisecond
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		n := NewOrderNumber()
		require.False(t, seen[n], "duplicate order number %s", n)
		seen[n] = true
	}
}
