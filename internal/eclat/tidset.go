package eclat

// TIDSet is the set of transaction identifiers in which an item or
// itemset occurs, stored as a sorted slice of transaction indices.
// The sorted representation makes intersection a linear merge and
// support counting a len().
type TIDSet []int

// Intersect returns the transaction IDs present in both sets. The
// result is always a fresh slice: sibling equivalence classes derive
// their TID-sets independently and must never alias each other's
// backing arrays.
func (s TIDSet) Intersect(other TIDSet) TIDSet {
	smaller := len(s)
	if len(other) < smaller {
		smaller = len(other)
	}
	out := make(TIDSet, 0, smaller)

	i, j := 0, 0
	for i < len(s) && j < len(other) {
		switch {
		case s[i] < other[j]:
			i++
		case s[i] > other[j]:
			j++
		default:
			out = append(out, s[i])
			i++
			j++
		}
	}
	return out
}

// Support is the number of transactions the set covers.
func (s TIDSet) Support() int {
	return len(s)
}

// Contains reports whether the set holds the given transaction ID.
func (s TIDSet) Contains(tid int) bool {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := (lo + hi) / 2
		if s[mid] < tid {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(s) && s[lo] == tid
}
