package counter

import (
	"log/slog"

	"github.com/google/btree"
)

// btreeDegree is the branching factor of the ordered table's B-tree.
const btreeDegree = 32

// wordEntry is a single B-tree item; ordering uses word only.
type wordEntry struct {
	word  string
	count int
}

func lessWord(a, b wordEntry) bool {
	return a.word < b.word
}

// OrderedCounter counts words into a B-tree so iteration is sorted by word.
type OrderedCounter struct{}

// NewOrderedCounter creates a new OrderedCounter instance.
func NewOrderedCounter() FrequencyCounter {
	return &OrderedCounter{}
}

// Count builds a sorted frequency table from tokens.
func (oc *OrderedCounter) Count(tokens []string) Table {
	tree := btree.NewG(btreeDegree, lessWord)

	for _, token := range tokens {
		entry, found := tree.Get(wordEntry{word: token})
		if !found {
			entry = wordEntry{word: token}
		}
		entry.count++
		tree.ReplaceOrInsert(entry)
	}

	slog.Debug("Ordered table built", "tokens", len(tokens), "distinctWords", tree.Len())
	return &orderedTable{tree: tree, total: len(tokens)}
}

// Name returns the report label for this strategy.
func (oc *OrderedCounter) Name() string {
	return "Ordered map"
}

type orderedTable struct {
	tree  *btree.BTreeG[wordEntry]
	total int
}

func (t *orderedTable) Get(word string) int {
	entry, _ := t.tree.Get(wordEntry{word: word})
	return entry.count
}

func (t *orderedTable) Len() int {
	return t.tree.Len()
}

func (t *orderedTable) Total() int {
	return t.total
}

func (t *orderedTable) Each(fn func(word string, count int) bool) {
	t.tree.Ascend(func(entry wordEntry) bool {
		return fn(entry.word, entry.count)
	})
}
