package eclat

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dbsmedya/goeclat/internal/logger"
)

// MineStats contains statistics about one mining run.
type MineStats struct {
	TransactionCount int
	FrequentItems    int           // Frequent single items (root class size)
	ClassesExpanded  int           // Equivalence classes processed
	Intersections    int           // TID-set intersections performed
	ItemsetsFound    int           // Total frequent itemsets emitted
	MaxItemsetSize   int           // Largest frequent itemset found
	Truncated        bool          // True when MaxClasses cut the run short
	Duration         time.Duration // Time taken for mining
}

// MineResult holds the full outcome of a mining run.
type MineResult[T cmp.Ordered] struct {
	MinCount  int
	Itemsets  []FrequentItemset[T]
	Stats     MineStats
	StartedAt time.Time
}

// Miner coordinates a complete mining run over one dataset: it builds
// the vertical database, walks the itemset lattice with an explicit
// worklist of equivalence classes, and collects results and
// statistics. Cancellation is checked once per class expansion, never
// mid-intersection, so stopping is prompt but intersections always
// complete.
type Miner[T cmp.Ordered] struct {
	minSupport MinSupport
	maxClasses int // 0 = unbounded
	logger     *logger.Logger
}

// MinerOption configures a Miner.
type MinerOption[T cmp.Ordered] func(*Miner[T])

// WithMaxClasses bounds the number of equivalence-class expansions.
// Zero means unbounded. A truncated run still returns everything found
// so far, with Stats.Truncated set.
func WithMaxClasses[T cmp.Ordered](n int) MinerOption[T] {
	return func(m *Miner[T]) { m.maxClasses = n }
}

// WithLogger sets the logger used for run progress.
func WithLogger[T cmp.Ordered](log *logger.Logger) MinerOption[T] {
	return func(m *Miner[T]) { m.logger = log }
}

// NewMiner creates a miner with the given minimum support threshold.
func NewMiner[T cmp.Ordered](min MinSupport, opts ...MinerOption[T]) *Miner[T] {
	m := &Miner[T]{minSupport: min}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = logger.NewDefault()
	}
	return m
}

// workItem is one pending equivalence class: the shared prefix and its
// candidate extension members.
type workItem[T cmp.Ordered] struct {
	prefix []T
	class  []classMember[T]
}

// Mine runs the full pipeline over the given transactions. It returns
// the builder's errors (ErrInvalidThreshold, ErrEmptyDataset)
// unchanged, and ctx.Err() when cancelled between class expansions.
func (m *Miner[T]) Mine(ctx context.Context, transactions [][]T) (*MineResult[T], error) {
	start := time.Now()

	db, err := BuildVerticalDatabase(transactions, m.minSupport)
	if err != nil {
		return nil, err
	}

	m.logger.Infow("Vertical database built",
		"transactions", db.transactionCount,
		"frequent_items", len(db.items),
		"min_count", db.minCount,
	)

	result := &MineResult[T]{
		MinCount:  db.minCount,
		StartedAt: start,
	}
	stats := &result.Stats
	stats.TransactionCount = db.transactionCount
	stats.FrequentItems = len(db.items)

	emit := func(items Itemset[T], support int) {
		result.Itemsets = append(result.Itemsets, FrequentItemset[T]{Items: items, Support: support})
		if len(items) > stats.MaxItemsetSize {
			stats.MaxItemsetSize = len(items)
		}
	}

	for _, member := range db.items {
		emit(Itemset[T]{member.item}, member.tids.Support())
	}

	// Iterative depth-first traversal with an explicit worklist, so a
	// deep lattice never grows the call stack. Matches the recursive
	// enumerator in mine.go result-for-result.
	var stack []workItem[T]
	if len(db.items) > 1 {
		stack = append(stack, workItem[T]{class: db.items})
	}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			m.logger.Warnw("Mining cancelled",
				"itemsets_found", len(result.Itemsets),
				"classes_expanded", stats.ClassesExpanded,
			)
			return nil, err
		}
		if m.maxClasses > 0 && stats.ClassesExpanded >= m.maxClasses {
			stats.Truncated = true
			m.logger.Warnw("Class expansion limit reached, stopping early",
				"max_classes", m.maxClasses,
				"itemsets_found", len(result.Itemsets),
			)
			break
		}

		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stats.ClassesExpanded++

		for i := 0; i < len(cur.class)-1; i++ {
			childPrefix := append(slices.Clone(cur.prefix), cur.class[i].item)

			var child []classMember[T]
			for j := i + 1; j < len(cur.class); j++ {
				tids := cur.class[i].tids.Intersect(cur.class[j].tids)
				stats.Intersections++
				if tids.Support() < db.minCount {
					continue
				}
				emit(canonical(childPrefix, cur.class[j].item), tids.Support())
				child = append(child, classMember[T]{item: cur.class[j].item, tids: tids})
			}

			if len(child) > 1 {
				stack = append(stack, workItem[T]{prefix: childPrefix, class: child})
			}
		}
	}

	stats.ItemsetsFound = len(result.Itemsets)
	stats.Duration = time.Since(start)

	m.logger.Infow("Mining complete",
		"itemsets", stats.ItemsetsFound,
		"max_size", stats.MaxItemsetSize,
		"classes_expanded", stats.ClassesExpanded,
		"intersections", stats.Intersections,
		"duration", stats.Duration,
	)

	return result, nil
}

// EstimateResult holds pre-mining estimates for a dataset, used by the
// stats command before committing to a full run.
type EstimateResult struct {
	TransactionCount int
	DistinctItems    int
	FrequentItems    int
	MinCount         int
	// PairCandidates is the number of 2-itemset candidates the first
	// expansion will intersect: C(frequent_items, 2). The true search
	// space below that depends on the data.
	PairCandidates int
}

// Estimate builds the vertical database and reports cheap search-space
// numbers without mining.
func (m *Miner[T]) Estimate(transactions [][]T) (*EstimateResult, error) {
	distinct := make(map[T]struct{})
	for _, transaction := range transactions {
		for _, item := range transaction {
			distinct[item] = struct{}{}
		}
	}

	db, err := BuildVerticalDatabase(transactions, m.minSupport)
	if err != nil {
		return nil, err
	}

	k := len(db.items)
	return &EstimateResult{
		TransactionCount: db.transactionCount,
		DistinctItems:    len(distinct),
		FrequentItems:    k,
		MinCount:         db.minCount,
		PairCandidates:   k * (k - 1) / 2,
	}, nil
}

func (s MineStats) String() string {
	return fmt.Sprintf("itemsets=%d classes=%d intersections=%d duration=%s",
		s.ItemsetsFound, s.ClassesExpanded, s.Intersections, s.Duration)
}
