package orders

import (
	"fmt"
	rndm "math/rand"
	"sync"
	"time"
)

// Order numbers look like ORD-1724990000000-7F3K2QZ: a fixed prefix, the
// creation time in unix milliseconds, and a short random suffix that keeps
// them human-readable over the phone.
const orderNumberPrefix = "ORD"

var suffixRunes = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

var (
	numberMu   sync.Mutex
	lastNumber string
)

// NewOrderNumber returns an order number distinct from the previously issued
// one, even when both calls land in the same millisecond.
func NewOrderNumber() string {
	numberMu.Lock()
	defer numberMu.Unlock()

	for {
		number := fmt.Sprintf("%s-%d-%s", orderNumberPrefix, time.Now().UnixMilli(), randomSuffix(7))
		if number != lastNumber {
			lastNumber = number
			return number
		}
	}
}

func randomSuffix(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = suffixRunes[rndm.Intn(len(suffixRunes))]
	}
	return string(b)
}
