package dataset

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dbsmedya/goeclat/internal/config"
	"github.com/dbsmedya/goeclat/internal/logger"
	"github.com/dbsmedya/goeclat/internal/sqlutil"
)

// PreflightError represents a preflight check failure.
type PreflightError struct {
	Check   string
	Message string
}

func (e *PreflightError) Error() string {
	return fmt.Sprintf("%s: %s", e.Check, e.Message)
}

// PreflightChecker verifies that a table-backed dataset is usable
// before any mining work starts: the table exists, the configured
// columns exist, and the table is not empty.
type PreflightChecker struct {
	db           *sql.DB
	sourceDBName string
	logger       *logger.Logger
}

// NewPreflightChecker creates a new preflight checker.
func NewPreflightChecker(db *sql.DB, sourceDBName string, log *logger.Logger) (*PreflightChecker, error) {
	if db == nil {
		return nil, fmt.Errorf("database is nil")
	}
	if sourceDBName == "" {
		return nil, fmt.Errorf("source database name is required")
	}
	if log == nil {
		log = logger.NewDefault()
	}

	return &PreflightChecker{
		db:           db,
		sourceDBName: sourceDBName,
		logger:       log,
	}, nil
}

// Check runs all preflight checks for one table dataset.
func (p *PreflightChecker) Check(ctx context.Context, name string, cfg *config.DatasetConfig) error {
	if !cfg.IsTable() {
		return nil
	}

	p.logger.Infow("Running preflight checks", "dataset", name, "table", cfg.Table)

	if err := p.checkTableExists(ctx, cfg.Table); err != nil {
		return err
	}
	for _, column := range []string{cfg.TransactionColumn, cfg.ItemColumn} {
		if err := p.checkColumnExists(ctx, cfg.Table, column); err != nil {
			return err
		}
	}
	if err := p.checkNotEmpty(ctx, cfg); err != nil {
		return err
	}

	p.logger.Infow("Preflight checks passed", "dataset", name)
	return nil
}

func (p *PreflightChecker) checkTableExists(ctx context.Context, table string) error {
	query := `SELECT COUNT(*) FROM information_schema.TABLES
		WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?`

	var count int
	if err := p.db.QueryRowContext(ctx, query, p.sourceDBName, table).Scan(&count); err != nil {
		return fmt.Errorf("table existence check failed: %w", err)
	}
	if count == 0 {
		return &PreflightError{
			Check:   "table_exists",
			Message: fmt.Sprintf("table %q does not exist in database %q", table, p.sourceDBName),
		}
	}
	return nil
}

func (p *PreflightChecker) checkColumnExists(ctx context.Context, table, column string) error {
	query := `SELECT COUNT(*) FROM information_schema.COLUMNS
		WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ? AND COLUMN_NAME = ?`

	var count int
	if err := p.db.QueryRowContext(ctx, query, p.sourceDBName, table, column).Scan(&count); err != nil {
		return fmt.Errorf("column existence check failed: %w", err)
	}
	if count == 0 {
		return &PreflightError{
			Check:   "column_exists",
			Message: fmt.Sprintf("column %q does not exist on table %q", column, table),
		}
	}
	return nil
}

// checkNotEmpty fails early for empty tables so the builder's empty
// dataset error does not surface after a pointless network round trip.
func (p *PreflightChecker) checkNotEmpty(ctx context.Context, cfg *config.DatasetConfig) error {
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s", sqlutil.QuoteIdentifier(cfg.Table))
	if cfg.Where != "" {
		query += " WHERE " + cfg.Where
	}
	query += ")"

	var exists bool
	if err := p.db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		return fmt.Errorf("row count check failed: %w", err)
	}
	if !exists {
		return &PreflightError{
			Check:   "not_empty",
			Message: fmt.Sprintf("table %q has no rows matching the dataset filter", cfg.Table),
		}
	}
	return nil
}
