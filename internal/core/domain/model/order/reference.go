package order

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"delivr/internal/pkg/errs"
)

// referencePrefix starts every customer-facing order reference.
const referencePrefix = "ORD"

// Reference is the human-readable order identifier shown to customers and
// support staff, formatted ORD<millisecond-timestamp><3-digit-random>.
// It is generated exactly once per order and never resequenced on retry.
type Reference string

// NewReference generates a reference from the current time and a random
// 3-digit suffix.
func NewReference() Reference {
	return Reference(fmt.Sprintf("%s%d%03d", referencePrefix, time.Now().UnixMilli(), rand.IntN(1000)))
}

// ParseReference validates a wire string as an order reference.
func ParseReference(s string) (Reference, error) {
	r := Reference(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// Validate checks the ORD prefix and the digits-only payload.
func (r Reference) Validate() error {
	s := string(r)
	if !strings.HasPrefix(s, referencePrefix) || len(s) <= len(referencePrefix) {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderReference", fmt.Errorf("%q does not match ORD<timestamp><random>", s))
	}
	for _, c := range s[len(referencePrefix):] {
		if c < '0' || c > '9' {
			return errs.NewValueIsInvalidErrorWithCause(
				"orderReference", fmt.Errorf("%q contains a non-digit payload", s))
		}
	}
	return nil
}

// String implements fmt.Stringer.
func (r Reference) String() string {
	return string(r)
}
