package units

import "strings"

// WordCounter counts whitespace-separated words.
type WordCounter struct{}

// NewWordCounter creates a new WordCounter instance.
func NewWordCounter() Counter {
	return &WordCounter{}
}

// Count returns the number of words in text, splitting on any Unicode whitespace.
func (wc *WordCounter) Count(text string) int {
	return len(strings.Fields(text))
}

// Name returns the name of this measure.
func (wc *WordCounter) Name() string {
	return "words"
}
