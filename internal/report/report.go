// Package report renders mining results for the terminal: a
// width-aware table, CSV output, a size-grouped summary, and an ASCII
// prefix tree of the frequent itemsets.
package report

import (
	"cmp"
	"slices"
	"strings"

	"github.com/dbsmedya/goeclat/internal/eclat"
)

// SortMode controls display ordering of the result set. The engine's
// emission order follows the depth-first traversal and is not a
// presentation order.
type SortMode string

const (
	// SortSupport orders by descending support, ties by size then items.
	SortSupport SortMode = "support"
	// SortSize orders by ascending itemset size, ties by items.
	SortSize SortMode = "size"
	// SortLexical orders by the items alone.
	SortLexical SortMode = "lexical"
)

// Sort orders a result set in place for display.
func Sort(itemsets []eclat.FrequentItemset[string], mode SortMode) {
	switch mode {
	case SortSize:
		slices.SortFunc(itemsets, func(a, b eclat.FrequentItemset[string]) int {
			if c := cmp.Compare(len(a.Items), len(b.Items)); c != 0 {
				return c
			}
			return compareItems(a.Items, b.Items)
		})
	case SortLexical:
		slices.SortFunc(itemsets, func(a, b eclat.FrequentItemset[string]) int {
			return compareItems(a.Items, b.Items)
		})
	default: // SortSupport
		slices.SortFunc(itemsets, func(a, b eclat.FrequentItemset[string]) int {
			if c := cmp.Compare(b.Support, a.Support); c != 0 {
				return c
			}
			if c := cmp.Compare(len(a.Items), len(b.Items)); c != 0 {
				return c
			}
			return compareItems(a.Items, b.Items)
		})
	}
}

func compareItems(a, b eclat.Itemset[string]) int {
	return slices.Compare(a, b)
}

// formatItems renders an itemset as a comma-joined list.
func formatItems(items eclat.Itemset[string]) string {
	return strings.Join(items, ", ")
}
