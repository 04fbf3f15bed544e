package counter

import "log/slog"

// UnorderedCounter counts words into a Go map.
type UnorderedCounter struct{}

// NewUnorderedCounter creates a new UnorderedCounter instance.
func NewUnorderedCounter() FrequencyCounter {
	return &UnorderedCounter{}
}

// Count builds a frequency table from tokens; iteration order is unspecified.
func (uc *UnorderedCounter) Count(tokens []string) Table {
	counts := make(map[string]int)
	for _, token := range tokens {
		counts[token]++
	}

	slog.Debug("Unordered table built", "tokens", len(tokens), "distinctWords", len(counts))
	return &unorderedTable{counts: counts, total: len(tokens)}
}

// Name returns the report label for this strategy.
func (uc *UnorderedCounter) Name() string {
	return "Hash map"
}

type unorderedTable struct {
	counts map[string]int
	total  int
}

func (t *unorderedTable) Get(word string) int {
	return t.counts[word]
}

func (t *unorderedTable) Len() int {
	return len(t.counts)
}

func (t *unorderedTable) Total() int {
	return t.total
}

func (t *unorderedTable) Each(fn func(word string, count int) bool) {
	for word, count := range t.counts {
		if !fn(word, count) {
			return
		}
	}
}
