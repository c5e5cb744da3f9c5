// Package dataset loads transaction datasets for mining. A dataset is
// an ordered list of transactions, each a set of string items; sources
// read them from flat basket files or MySQL tables. The mining engine
// itself never does I/O — this package is the collaborator that feeds
// it.
package dataset

import (
	"context"
	"fmt"

	"github.com/dbsmedya/goeclat/internal/config"
	"github.com/dbsmedya/goeclat/internal/database"
	"github.com/dbsmedya/goeclat/internal/logger"
	"github.com/dbsmedya/goeclat/internal/types"
)

// Source loads one transaction dataset.
type Source interface {
	// Load reads the full dataset. Transactions keep their input order
	// since transaction IDs are positional.
	Load(ctx context.Context) (*types.Dataset, error)
}

// NewSource builds the Source for a dataset configuration. Table
// datasets need a connected database manager; file datasets ignore it.
func NewSource(name string, cfg *config.DatasetConfig, dbManager *database.Manager, log *logger.Logger) (Source, error) {
	if cfg == nil {
		return nil, fmt.Errorf("dataset config is nil")
	}
	if log == nil {
		log = logger.NewDefault()
	}

	switch cfg.Kind {
	case "file":
		return NewFileSource(name, cfg.Path, cfg.EffectiveDelimiter(), log), nil
	case "table":
		if dbManager == nil || dbManager.Source == nil {
			return nil, fmt.Errorf("table dataset %q requires a database connection", name)
		}
		return NewSQLSource(name, dbManager.Source, cfg, log)
	default:
		return nil, fmt.Errorf("unknown dataset kind %q", cfg.Kind)
	}
}

// dedupe collapses repeated items within one transaction while keeping
// first-seen order. The engine treats transactions as sets.
func dedupe(items []string) []string {
	if len(items) < 2 {
		return items
	}
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// computeStats fills in dataset-level statistics after loading.
func computeStats(transactions [][]string) types.DatasetStats {
	distinct := make(map[string]struct{})
	var occurrences int64
	for _, transaction := range transactions {
		occurrences += int64(len(transaction))
		for _, item := range transaction {
			distinct[item] = struct{}{}
		}
	}
	return types.DatasetStats{
		TransactionCount: len(transactions),
		DistinctItems:    len(distinct),
		ItemOccurrences:  occurrences,
	}
}
