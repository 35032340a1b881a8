package checkout

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const orderNumberPrefix = "NK"

// newOrderNumber builds a timestamped order number with a random suffix.
// Uniqueness is probabilistic; the order_number column carries a unique index
// as the backstop.
func newOrderNumber(now time.Time) (string, error) {
	suffix, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("generating order number suffix: %w", err)
	}
	return fmt.Sprintf("%s-%s-%06d", orderNumberPrefix, now.UTC().Format("20060102150405"), suffix.Int64()), nil
}
