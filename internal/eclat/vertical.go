// Package eclat implements frequent itemset mining using the ECLAT
// algorithm: a vertical data layout (item -> transaction-ID set) and a
// depth-first traversal of the itemset lattice organised into
// equivalence classes of itemsets sharing a common prefix.
//
// The package is pure computation. It performs no I/O, owns no state
// between mining runs, and after threshold validation in
// BuildVerticalDatabase the enumeration cannot fail.
package eclat

import (
	"cmp"
	"fmt"
	"slices"
)

// VerticalDatabase holds the vertical representation of one dataset:
// for every item that meets the minimum support on its own, the sorted
// set of transaction IDs it occurs in. It is built once per mining run
// and read-only afterwards, so independent mining calls never share
// mutable state.
type VerticalDatabase[T cmp.Ordered] struct {
	// items ordered by ascending support, ties broken by item value.
	// Processing rare items first keeps intermediate TID-sets small
	// and fixes the total order that guarantees each itemset is
	// generated exactly once.
	items []classMember[T]

	transactionCount int
	minCount         int
}

// classMember is one entry of an equivalence class: a candidate
// extension item together with the TID-set of prefix+item.
type classMember[T cmp.Ordered] struct {
	item T
	tids TIDSet
}

// BuildVerticalDatabase converts a horizontal transaction list into
// the vertical item -> TID-set form, keeping only items whose own
// support meets the threshold. Transaction IDs are the positions in
// the input sequence. Duplicate items within a transaction count once.
//
// Returns ErrInvalidThreshold for a non-positive count or a fraction
// outside (0, 1], and ErrEmptyDataset when no transactions are given.
func BuildVerticalDatabase[T cmp.Ordered](transactions [][]T, min MinSupport) (*VerticalDatabase[T], error) {
	if len(transactions) == 0 {
		return nil, ErrEmptyDataset
	}

	minCount, err := min.Resolve(len(transactions))
	if err != nil {
		return nil, err
	}

	index := make(map[T]TIDSet)
	for tid, transaction := range transactions {
		for _, item := range transaction {
			tids := index[item]
			// TIDs arrive in ascending order; a repeated item in the
			// same transaction shows up as a repeated trailing TID.
			if n := len(tids); n > 0 && tids[n-1] == tid {
				continue
			}
			index[item] = append(tids, tid)
		}
	}

	members := make([]classMember[T], 0, len(index))
	for item, tids := range index {
		if tids.Support() >= minCount {
			members = append(members, classMember[T]{item: item, tids: tids})
		}
	}
	sortClass(members)

	return &VerticalDatabase[T]{
		items:            members,
		transactionCount: len(transactions),
		minCount:         minCount,
	}, nil
}

// sortClass orders equivalence-class members by ascending support,
// ties by item value.
func sortClass[T cmp.Ordered](members []classMember[T]) {
	slices.SortFunc(members, func(a, b classMember[T]) int {
		if c := cmp.Compare(a.tids.Support(), b.tids.Support()); c != 0 {
			return c
		}
		return cmp.Compare(a.item, b.item)
	})
}

// TransactionCount returns the number of transactions the database was
// built from.
func (db *VerticalDatabase[T]) TransactionCount() int {
	return db.transactionCount
}

// MinCount returns the resolved absolute support threshold.
func (db *VerticalDatabase[T]) MinCount() int {
	return db.minCount
}

// FrequentItems returns the frequent single items in the database's
// processing order (ascending support).
func (db *VerticalDatabase[T]) FrequentItems() []T {
	items := make([]T, len(db.items))
	for i, m := range db.items {
		items[i] = m.item
	}
	return items
}

// ItemSupport returns the support of a single item, or 0 if the item
// is not frequent.
func (db *VerticalDatabase[T]) ItemSupport(item T) int {
	for _, m := range db.items {
		if m.item == item {
			return m.tids.Support()
		}
	}
	return 0
}

func (db *VerticalDatabase[T]) String() string {
	return fmt.Sprintf("<VerticalDatabase %d transactions, %d frequent items, min count %d>",
		db.transactionCount, len(db.items), db.minCount)
}
