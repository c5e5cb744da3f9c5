package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/goeclat/internal/eclat"
)

// TableRenderer writes results as an aligned terminal table. Column
// widths are computed with runewidth so multi-byte item names line up.
type TableRenderer struct {
	Color bool
}

// Render writes the full result table. Supports are shown both as
// counts and as fractions of the transaction total.
func (r *TableRenderer) Render(w io.Writer, itemsets []eclat.FrequentItemset[string], transactionCount int) error {
	headers := []string{"ITEMSET", "SIZE", "SUPPORT", "FREQUENCY"}

	rows := make([][]string, 0, len(itemsets))
	for _, fi := range itemsets {
		freq := ""
		if transactionCount > 0 {
			freq = fmt.Sprintf("%.4f", float64(fi.Support)/float64(transactionCount))
		}
		rows = append(rows, []string{
			formatItems(fi.Items),
			fmt.Sprintf("%d", len(fi.Items)),
			fmt.Sprintf("%d", fi.Support),
			freq,
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	writeRow := func(cells []string, styled bool) error {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			padded := runewidth.FillRight(cell, widths[i])
			if styled && r.Color {
				padded = color.Bold.Sprint(padded)
			}
			parts[i] = padded
		}
		_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
		return err
	}

	if err := writeRow(headers, true); err != nil {
		return err
	}
	total := 0
	for _, width := range widths {
		total += width
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", total+2*(len(widths)-1))); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRow(row, false); err != nil {
			return err
		}
	}

	if r.Color {
		_, err := fmt.Fprintf(w, "\n%s\n", color.Green.Sprintf("%d frequent itemsets", len(itemsets)))
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d frequent itemsets\n", len(itemsets))
	return err
}
