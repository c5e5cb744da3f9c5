package report

import (
	"fmt"
	"io"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/goeclat/internal/eclat"
)

// sizeBucket aggregates the itemsets of one size.
type sizeBucket struct {
	Count      int
	MaxSupport int
}

// Summary writes a per-size breakdown of the result set. Sizes are
// reported in ascending order regardless of how the results were
// sorted for display, so the breakdown reads as a lattice profile.
func Summary(w io.Writer, itemsets []eclat.FrequentItemset[string]) error {
	buckets := orderedmap.NewOrderedMap[int, sizeBucket]()

	maxSize := 0
	for _, fi := range itemsets {
		if len(fi.Items) > maxSize {
			maxSize = len(fi.Items)
		}
	}
	for size := 1; size <= maxSize; size++ {
		buckets.Set(size, sizeBucket{})
	}

	for _, fi := range itemsets {
		b, _ := buckets.Get(len(fi.Items))
		b.Count++
		if fi.Support > b.MaxSupport {
			b.MaxSupport = fi.Support
		}
		buckets.Set(len(fi.Items), b)
	}

	if _, err := fmt.Fprintf(w, "Itemsets by size:\n"); err != nil {
		return err
	}
	for el := buckets.Front(); el != nil; el = el.Next() {
		if el.Value.Count == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "  size %d: %d itemsets (max support %d)\n",
			el.Key, el.Value.Count, el.Value.MaxSupport); err != nil {
			return err
		}
	}
	return nil
}
