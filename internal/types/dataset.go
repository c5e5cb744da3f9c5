// Package types contains shared types used across multiple packages to avoid import cycles.
package types

import "time"

// Dataset represents one loaded transaction dataset: an ordered list
// of transactions, each a set of string items.
type Dataset struct {
	Name         string
	Transactions [][]string
	Stats        DatasetStats
}

// DatasetStats contains statistics about the loading process.
type DatasetStats struct {
	TransactionCount int           // Number of transactions loaded
	DistinctItems    int           // Number of distinct items seen
	ItemOccurrences  int64         // Total item occurrences (after de-duplication)
	Duration         time.Duration // Time taken to load
}

// Density returns the average fraction of the item domain present in a
// transaction. Zero when the dataset is empty.
func (s DatasetStats) Density() float64 {
	if s.TransactionCount == 0 || s.DistinctItems == 0 {
		return 0
	}
	avg := float64(s.ItemOccurrences) / float64(s.TransactionCount)
	return avg / float64(s.DistinctItems)
}
