package dataset

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dbsmedya/goeclat/internal/logger"
	"github.com/dbsmedya/goeclat/internal/types"
)

// FileSource reads a basket file: one transaction per line, items
// separated by a delimiter. Blank lines and surrounding whitespace are
// ignored; repeated items within a line count once.
type FileSource struct {
	name      string
	path      string
	delimiter string
	logger    *logger.Logger
}

// NewFileSource creates a file-backed dataset source.
func NewFileSource(name, path, delimiter string, log *logger.Logger) *FileSource {
	if log == nil {
		log = logger.NewDefault()
	}
	return &FileSource{
		name:      name,
		path:      path,
		delimiter: delimiter,
		logger:    log.WithSource(path),
	}
}

// Load reads the whole file into memory. Basket files are small
// relative to the mining search space, so streaming buys nothing here.
func (f *FileSource) Load(ctx context.Context) (*types.Dataset, error) {
	start := time.Now()

	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer file.Close()

	var transactions [][]string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if lineNum%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, f.delimiter)
		items := make([]string, 0, len(parts))
		for _, part := range parts {
			item := strings.TrimSpace(part)
			if item != "" {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			continue
		}
		transactions = append(transactions, dedupe(items))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	ds := &types.Dataset{
		Name:         f.name,
		Transactions: transactions,
		Stats:        computeStats(transactions),
	}
	ds.Stats.Duration = time.Since(start)

	f.logger.Infow("Dataset loaded",
		"transactions", ds.Stats.TransactionCount,
		"distinct_items", ds.Stats.DistinctItems,
		"duration", ds.Stats.Duration,
	)

	return ds, nil
}
