package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/dbsmedya/goeclat/internal/eclat"
)

// CSVRenderer writes results as CSV with a header row. Items within an
// itemset are joined with a semicolon so the itemset stays one field.
type CSVRenderer struct{}

// Render writes the result set as CSV.
func (r *CSVRenderer) Render(w io.Writer, itemsets []eclat.FrequentItemset[string]) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"itemset", "size", "support"}); err != nil {
		return err
	}
	for _, fi := range itemsets {
		record := []string{
			strings.Join(fi.Items, ";"),
			strconv.Itoa(len(fi.Items)),
			strconv.Itoa(fi.Support),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
