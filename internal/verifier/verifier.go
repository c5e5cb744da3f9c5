// Package verifier provides brute-force verification of mining output
// for GoEclat. It recomputes every frequent itemset by exhaustive
// enumeration over the item domain and compares the result against the
// engine's output. The cost is exponential in the number of distinct
// items, so verification is capped and meant for small datasets and
// tests, not production runs.
package verifier

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dbsmedya/goeclat/internal/eclat"
	"github.com/dbsmedya/goeclat/internal/logger"
)

// DefaultMaxItems bounds the brute-force item domain: 2^16 candidate
// itemsets is the most the verifier will enumerate.
const DefaultMaxItems = 16

// VerifyResult holds the outcome of one verification run.
type VerifyResult struct {
	Match        bool
	Expected     int
	Got          int
	Missing      []string // canonical keys the engine failed to emit
	Unexpected   []string // canonical keys the engine emitted wrongly
	WrongSupport []string // canonical keys with mismatched support
}

// Verifier cross-checks engine output against exhaustive enumeration.
type Verifier struct {
	maxItems int
	logger   *logger.Logger
}

// NewVerifier creates a verifier. maxItems <= 0 selects DefaultMaxItems.
func NewVerifier(maxItems int, log *logger.Logger) *Verifier {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	if log == nil {
		log = logger.NewDefault()
	}
	return &Verifier{maxItems: maxItems, logger: log}
}

// key renders a canonical itemset identifier for set comparison.
func key(items []string) string {
	return strings.Join(items, "\x1f")
}

// BruteForce enumerates every itemset over the distinct items of the
// dataset and returns those with support >= minCount, computed by a
// horizontal scan per candidate. Returns an error when the item domain
// exceeds the verifier's cap.
func (v *Verifier) BruteForce(transactions [][]string, minCount int) (map[string]int, error) {
	domainSet := make(map[string]struct{})
	for _, transaction := range transactions {
		for _, item := range transaction {
			domainSet[item] = struct{}{}
		}
	}
	domain := make([]string, 0, len(domainSet))
	for item := range domainSet {
		domain = append(domain, item)
	}
	sort.Strings(domain)

	if len(domain) > v.maxItems {
		return nil, fmt.Errorf("refusing brute-force verification: %d distinct items exceeds cap of %d", len(domain), v.maxItems)
	}

	// Precompute per-transaction membership for O(1) subset checks.
	sets := make([]map[string]struct{}, len(transactions))
	for i, transaction := range transactions {
		sets[i] = make(map[string]struct{}, len(transaction))
		for _, item := range transaction {
			sets[i][item] = struct{}{}
		}
	}

	expected := make(map[string]int)
	for mask := 1; mask < 1<<len(domain); mask++ {
		var itemset []string
		for bit := 0; bit < len(domain); bit++ {
			if mask&(1<<bit) != 0 {
				itemset = append(itemset, domain[bit])
			}
		}

		support := 0
		for _, set := range sets {
			contained := true
			for _, item := range itemset {
				if _, ok := set[item]; !ok {
					contained = false
					break
				}
			}
			if contained {
				support++
			}
		}

		if support >= minCount {
			expected[key(itemset)] = support
		}
	}
	return expected, nil
}

// Verify compares engine output against the brute-force ground truth.
func (v *Verifier) Verify(transactions [][]string, minCount int, got []eclat.FrequentItemset[string]) (*VerifyResult, error) {
	expected, err := v.BruteForce(transactions, minCount)
	if err != nil {
		return nil, err
	}

	gotMap := make(map[string]int, len(got))
	for _, fi := range got {
		gotMap[key(fi.Items)] = fi.Support
	}

	result := &VerifyResult{
		Expected: len(expected),
		Got:      len(gotMap),
	}

	for k, support := range expected {
		gotSupport, ok := gotMap[k]
		if !ok {
			result.Missing = append(result.Missing, k)
			continue
		}
		if gotSupport != support {
			result.WrongSupport = append(result.WrongSupport, k)
		}
	}
	for k := range gotMap {
		if _, ok := expected[k]; !ok {
			result.Unexpected = append(result.Unexpected, k)
		}
	}

	sort.Strings(result.Missing)
	sort.Strings(result.Unexpected)
	sort.Strings(result.WrongSupport)
	result.Match = len(result.Missing) == 0 && len(result.Unexpected) == 0 && len(result.WrongSupport) == 0

	if result.Match {
		v.logger.Infow("Verification passed", "itemsets", result.Got)
	} else {
		v.logger.Errorw("Verification failed",
			"expected", result.Expected,
			"got", result.Got,
			"missing", len(result.Missing),
			"unexpected", len(result.Unexpected),
			"wrong_support", len(result.WrongSupport),
		)
	}

	return result, nil
}
