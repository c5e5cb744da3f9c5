package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dbsmedya/goeclat/internal/eclat"
)

func TestSummary(t *testing.T) {
	var buf bytes.Buffer

	results := []eclat.FrequentItemset[string]{
		{Items: eclat.Itemset[string]{"bread"}, Support: 3},
		{Items: eclat.Itemset[string]{"milk"}, Support: 4},
		{Items: eclat.Itemset[string]{"bread", "milk"}, Support: 2},
		{Items: eclat.Itemset[string]{"bread", "eggs", "milk"}, Support: 1},
	}

	if err := Summary(&buf, results); err != nil {
		t.Fatalf("Summary failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Itemsets by size:" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[1] != "  size 1: 2 itemsets (max support 4)" {
		t.Errorf("unexpected size 1 line: %q", lines[1])
	}
	if lines[2] != "  size 2: 1 itemsets (max support 2)" {
		t.Errorf("unexpected size 2 line: %q", lines[2])
	}
	if lines[3] != "  size 3: 1 itemsets (max support 1)" {
		t.Errorf("unexpected size 3 line: %q", lines[3])
	}
}

func TestSummary_AscendingSizeOrderRegardlessOfInput(t *testing.T) {
	var buf bytes.Buffer

	// Results sorted by support put the pair before the singles.
	results := []eclat.FrequentItemset[string]{
		{Items: eclat.Itemset[string]{"bread", "milk"}, Support: 9},
		{Items: eclat.Itemset[string]{"bread"}, Support: 3},
	}

	if err := Summary(&buf, results); err != nil {
		t.Fatalf("Summary failed: %v", err)
	}

	out := buf.String()
	if strings.Index(out, "size 1") > strings.Index(out, "size 2") {
		t.Errorf("sizes out of order:\n%s", out)
	}
}

func TestSummary_Empty(t *testing.T) {
	var buf bytes.Buffer

	if err := Summary(&buf, nil); err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if strings.TrimRight(buf.String(), "\n") != "Itemsets by size:" {
		t.Errorf("expected header only, got %q", buf.String())
	}
}
