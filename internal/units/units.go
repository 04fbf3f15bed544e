// Package units measures the size of raw input text for the wordfreq summary.
//
// Three measures are available through the Counter interface: words
// (whitespace splitting), characters (UTF-8 runes), and tokens (tiktoken
// with the cl100k_base encoding). They describe the input as a whole and are
// independent of the punctuation-stripping tokenizer used for frequencies.
//
// Usage Example:
//
//	c, _ := units.NewCounter(units.Characters)
//	n := c.Count("Hello, world!") // 13
package units

import "fmt"

// Counter defines the interface for the input size measures.
type Counter interface {
	// Count returns the number of units (tokens, words, or characters) in given text.
	Count(text string) int

	// Name returns a human-readable name for this measure (used in the summary)
	Name() string
}

// Method represents the available measures.
type Method int

const (
	// Words counts words using whitespace splitting
	Words Method = iota
	// Characters counts individual characters including whitespace
	Characters
	// Tokens uses tiktoken with cl100k_base encoding
	Tokens
)

// String returns the string representation of the measure.
func (m Method) String() string {
	switch m {
	case Words:
		return "words"
	case Characters:
		return "characters"
	case Tokens:
		return "tokens"
	default:
		return "unknown"
	}
}

// NewCounter creates a Counter for the given measure.
// Returns an error if the counter cannot be initialized (e.g., tiktoken encoding fails).
func NewCounter(method Method) (Counter, error) {
	switch method {
	case Words:
		return NewWordCounter(), nil
	case Characters:
		return NewCharCounter(), nil
	case Tokens:
		return NewTokenCounter()
	default:
		return nil, fmt.Errorf("unknown measure %d", int(method))
	}
}
