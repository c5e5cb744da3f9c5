package eclat

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidThreshold is returned when a minimum support threshold is
// non-positive or, for a relative threshold, outside (0, 1].
var ErrInvalidThreshold = errors.New("invalid minimum support threshold")

// ErrEmptyDataset is returned when the transaction sequence is empty.
// An empty dataset is treated as an error rather than an empty result
// so that misconfigured sources fail loudly instead of silently mining
// nothing.
var ErrEmptyDataset = errors.New("dataset contains no transactions")

// MinSupport is a minimum support threshold, given either as an
// absolute transaction count or as a fraction of the total number of
// transactions.
type MinSupport struct {
	count    int
	fraction float64
	relative bool
}

// AbsoluteSupport returns a threshold expressed as an absolute
// transaction count. The count must be positive.
func AbsoluteSupport(count int) MinSupport {
	return MinSupport{count: count}
}

// RelativeSupport returns a threshold expressed as a fraction of the
// transaction count. The fraction must be in (0, 1].
func RelativeSupport(fraction float64) MinSupport {
	return MinSupport{fraction: fraction, relative: true}
}

// IsRelative reports whether the threshold was given as a fraction.
func (m MinSupport) IsRelative() bool {
	return m.relative
}

// Resolve converts the threshold to an absolute count for a dataset of
// the given size. Fractions are rounded up: a 5% threshold over 101
// transactions requires 6 occurrences, not 5. Validation happens here,
// before any mining work begins.
func (m MinSupport) Resolve(transactionCount int) (int, error) {
	if m.relative {
		if m.fraction <= 0 || m.fraction > 1 {
			return 0, fmt.Errorf("%w: fraction %v must be in (0, 1]", ErrInvalidThreshold, m.fraction)
		}
		return int(math.Ceil(m.fraction * float64(transactionCount))), nil
	}
	if m.count <= 0 {
		return 0, fmt.Errorf("%w: count %d must be positive", ErrInvalidThreshold, m.count)
	}
	return m.count, nil
}

// String renders the threshold for logs and error messages.
func (m MinSupport) String() string {
	if m.relative {
		return fmt.Sprintf("%v of transactions", m.fraction)
	}
	return fmt.Sprintf("%d transactions", m.count)
}
