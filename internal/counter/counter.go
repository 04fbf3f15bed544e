// Package counter builds word frequency tables for the wordfreq CLI tool.
//
// Two interchangeable strategies share the FrequencyCounter interface:
//   - Ordered keeps words in a B-tree, so iteration is lexicographic and each
//     insertion costs O(log n)
//   - Unordered keeps words in a hash map, so insertion is O(1) on average
//     and iteration order is unspecified
//
// Both strategies produce identical word → count contents for the same
// tokens; they differ only in iteration order and performance profile,
// which is what the CLI times and reports.
//
// Usage Example:
//
//	fc, _ := counter.NewCounter(counter.Ordered)
//	table := fc.Count([]string{"the", "cat", "the"})
//	table.Get("the") // 2
package counter

import (
	"fmt"
	"strings"
)

// Table is an immutable mapping from word to occurrence count.
type Table interface {
	// Get returns the count for word, or 0 if it never occurred.
	Get(word string) int

	// Len returns the number of distinct words.
	Len() int

	// Total returns the sum of all counts, i.e. the number of tokens counted.
	Total() int

	// Each calls fn for every entry in the table's iteration order,
	// stopping early if fn returns false.
	Each(fn func(word string, count int) bool)
}

// FrequencyCounter defines the interface for the counting strategies.
type FrequencyCounter interface {
	// Count builds a frequency table from tokens.
	Count(tokens []string) Table

	// Name returns a human-readable label for this strategy (for reports)
	Name() string
}

// Strategy represents the available counting strategies.
type Strategy int

const (
	// Ordered uses a B-tree keyed by word (sorted iteration)
	Ordered Strategy = iota
	// Unordered uses a Go map (no iteration order)
	Unordered
)

// String returns the CLI name of the strategy.
func (s Strategy) String() string {
	switch s {
	case Ordered:
		return "ordered"
	case Unordered:
		return "unordered"
	default:
		return "unknown"
	}
}

// MarshalText encodes the strategy by its CLI name.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseStrategy maps a CLI name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ordered", "btree", "tree":
		return Ordered, nil
	case "unordered", "hash", "map":
		return Unordered, nil
	default:
		return 0, fmt.Errorf("unknown counting strategy %q (want ordered or unordered)", name)
	}
}

// NewCounter creates a FrequencyCounter for the given strategy.
// Returns an error for an unknown strategy.
func NewCounter(strategy Strategy) (FrequencyCounter, error) {
	switch strategy {
	case Ordered:
		return NewOrderedCounter(), nil
	case Unordered:
		return NewUnorderedCounter(), nil
	default:
		return nil, fmt.Errorf("unknown counting strategy %d", int(strategy))
	}
}
