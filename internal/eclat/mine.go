package eclat

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Itemset is a canonically sorted set of items, the unit of mining
// output. Itemsets returned by the enumerator are always fresh slices
// sorted in ascending item order with no duplicates.
type Itemset[T cmp.Ordered] []T

// FrequentItemset pairs an itemset with its support count.
type FrequentItemset[T cmp.Ordered] struct {
	Items   Itemset[T]
	Support int
}

func (f FrequentItemset[T]) String() string {
	parts := make([]string, len(f.Items))
	for i, item := range f.Items {
		parts[i] = fmt.Sprint(item)
	}
	return fmt.Sprintf("{%s}:%d", strings.Join(parts, ","), f.Support)
}

// Mine enumerates every itemset whose support meets the database's
// threshold, as a lazy sequence of (itemset, support) pairs. Each
// frequent single item is emitted first, then the depth-first
// equivalence-class expansion emits larger itemsets. Emission order
// beyond the depth-first structure is unspecified.
//
// The sequence is finite and non-restartable in effect: breaking out
// of the range stops the enumeration where it stands. Mining cannot
// fail; all input validation happened in BuildVerticalDatabase.
func (db *VerticalDatabase[T]) Mine() iter.Seq2[Itemset[T], int] {
	return func(yield func(Itemset[T], int) bool) {
		for _, m := range db.items {
			if !yield(Itemset[T]{m.item}, m.tids.Support()) {
				return
			}
		}
		db.expand(nil, db.items, yield)
	}
}

// expand performs one equivalence-class expansion: every ordered pair
// (i, j) of class members is combined into a candidate extending
// prefix with both items, the candidate TID-set is the intersection of
// the members' TID-sets, and survivors seed the child class of
// prefix+member[i]. A candidate below threshold is discarded along
// with its whole subtree (anti-monotone pruning). Returns false when
// the consumer stopped the enumeration.
func (db *VerticalDatabase[T]) expand(prefix []T, class []classMember[T], yield func(Itemset[T], int) bool) bool {
	for i := 0; i < len(class)-1; i++ {
		childPrefix := append(slices.Clone(prefix), class[i].item)

		var child []classMember[T]
		for j := i + 1; j < len(class); j++ {
			tids := class[i].tids.Intersect(class[j].tids)
			if tids.Support() < db.minCount {
				continue
			}
			if !yield(canonical(childPrefix, class[j].item), tids.Support()) {
				return false
			}
			child = append(child, classMember[T]{item: class[j].item, tids: tids})
		}

		// A class with fewer than two members has no pairs left to
		// combine; its sole itemset was already emitted above.
		if len(child) > 1 {
			if !db.expand(childPrefix, child, yield) {
				return false
			}
		}
	}
	return true
}

// canonical builds the emitted itemset for prefix+item, sorted in
// ascending item order. Classes are ordered by support, not by item
// value, so the concatenation has to be re-sorted.
func canonical[T cmp.Ordered](prefix []T, item T) Itemset[T] {
	out := make(Itemset[T], 0, len(prefix)+1)
	out = append(out, prefix...)
	out = append(out, item)
	slices.Sort(out)
	return out
}
