package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dbsmedya/goeclat/internal/config"
	"github.com/dbsmedya/goeclat/internal/logger"
	"github.com/dbsmedya/goeclat/internal/sqlutil"
	"github.com/dbsmedya/goeclat/internal/types"
)

// SQLSource reads transactions from a MySQL table of
// (transaction_column, item_column) rows, grouping rows by transaction
// identifier in first-seen order. The identifiers only name groups;
// positions in the loaded dataset become the TIDs.
type SQLSource struct {
	name   string
	db     *sql.DB
	cfg    *config.DatasetConfig
	logger *logger.Logger
}

// NewSQLSource creates a table-backed dataset source. Table and column
// names are validated as identifiers before they are interpolated into
// the query.
func NewSQLSource(name string, db *sql.DB, cfg *config.DatasetConfig, log *logger.Logger) (*SQLSource, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	for _, ident := range []string{cfg.Table, cfg.TransactionColumn, cfg.ItemColumn} {
		if !sqlutil.IsValidIdentifier(ident) {
			return nil, &sqlutil.InvalidIdentifierError{Name: ident}
		}
	}
	if log == nil {
		log = logger.NewDefault()
	}
	return &SQLSource{
		name:   name,
		db:     db,
		cfg:    cfg,
		logger: log.WithSource(cfg.Table),
	}, nil
}

// query builds the SELECT for the dataset rows. Ordering by the
// transaction column keeps each transaction's rows contiguous so
// grouping is a single pass.
func (s *SQLSource) query() string {
	q := fmt.Sprintf("SELECT %s, %s FROM %s",
		sqlutil.QuoteIdentifier(s.cfg.TransactionColumn),
		sqlutil.QuoteIdentifier(s.cfg.ItemColumn),
		sqlutil.QuoteIdentifier(s.cfg.Table),
	)
	if s.cfg.Where != "" {
		q += " WHERE " + s.cfg.Where
	}
	q += " ORDER BY " + sqlutil.QuoteIdentifier(s.cfg.TransactionColumn)
	return q
}

// Load runs the query and groups rows into transactions.
func (s *SQLSource) Load(ctx context.Context) (*types.Dataset, error) {
	start := time.Now()

	rows, err := s.db.QueryContext(ctx, s.query())
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset table: %w", err)
	}
	defer rows.Close()

	var (
		transactions [][]string
		current      []string
		currentKey   string
		haveCurrent  bool
		rowCount     int64
	)

	flush := func() {
		if haveCurrent && len(current) > 0 {
			transactions = append(transactions, dedupe(current))
		}
		current = nil
	}

	for rows.Next() {
		var txVal, itemVal interface{}
		if err := rows.Scan(&txVal, &itemVal); err != nil {
			return nil, fmt.Errorf("failed to scan dataset row: %w", err)
		}
		rowCount++

		key := types.ToString(txVal)
		item := types.ToString(itemVal)
		if item == "" {
			continue
		}

		if !haveCurrent || key != currentKey {
			flush()
			currentKey = key
			haveCurrent = true
		}
		current = append(current, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dataset rows: %w", err)
	}
	flush()

	ds := &types.Dataset{
		Name:         s.name,
		Transactions: transactions,
		Stats:        computeStats(transactions),
	}
	ds.Stats.Duration = time.Since(start)

	s.logger.Infow("Dataset loaded from table",
		"rows", rowCount,
		"transactions", ds.Stats.TransactionCount,
		"distinct_items", ds.Stats.DistinctItems,
		"duration", ds.Stats.Duration,
	)

	return ds, nil
}
