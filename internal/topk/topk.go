// Package topk selects the most frequent words from a frequency table using
// a bounded min-heap, so selection costs O(n log k) for n words and k results.
package topk

import (
	"container/heap"
	"log/slog"
	"unicode/utf8"
)

// WordCount is a word paired with its occurrence count.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Entries is anything that can enumerate word counts; counter.Table satisfies it.
type Entries interface {
	Each(fn func(word string, count int) bool)
}

// minHeap orders WordCounts by ascending count
type minHeap []WordCount

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i].Count < h[j].Count }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(WordCount)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// TopWords returns up to topN entries whose word is longer than
// minWordLength characters, sorted by count descending.
//
// Parameters:
//   - entries: the frequency table to select from
//   - topN: maximum number of results; topN <= 0 yields an empty result
//   - minWordLength: words must have strictly more characters than this
//
// Ordering among equal counts depends on the table's iteration order and is
// not guaranteed.
func TopWords(entries Entries, topN, minWordLength int) []WordCount {
	if topN <= 0 {
		return []WordCount{}
	}

	var h minHeap
	qualifying := 0

	entries.Each(func(word string, count int) bool {
		if utf8.RuneCountInString(word) <= minWordLength {
			return true
		}
		qualifying++

		heap.Push(&h, WordCount{Word: word, Count: count})
		if h.Len() > topN {
			heap.Pop(&h) // evict current minimum
		}
		return true
	})

	// popping yields ascending counts, so fill from the back
	result := make([]WordCount, h.Len())
	for i := len(result) - 1; i >= 0; i-- {
		result[i] = heap.Pop(&h).(WordCount)
	}

	slog.Debug("Top words selected", "topN", topN, "minWordLength", minWordLength, "qualifying", qualifying, "selected", len(result))
	return result
}
