package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatasetStats_Density(t *testing.T) {
	tests := []struct {
		name     string
		stats    DatasetStats
		expected float64
	}{
		{
			name:     "empty dataset",
			stats:    DatasetStats{},
			expected: 0,
		},
		{
			name:     "no distinct items",
			stats:    DatasetStats{TransactionCount: 5},
			expected: 0,
		},
		{
			name: "full density",
			stats: DatasetStats{
				TransactionCount: 2,
				DistinctItems:    3,
				ItemOccurrences:  6,
			},
			expected: 1.0,
		},
		{
			name: "half density",
			stats: DatasetStats{
				TransactionCount: 4,
				DistinctItems:    10,
				ItemOccurrences:  20,
			},
			expected: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.stats.Density(), 1e-9)
		})
	}
}
