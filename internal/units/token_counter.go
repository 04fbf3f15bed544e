package units

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// encodingName is the tiktoken encoding used for token measures.
const encodingName = "cl100k_base"

// TokenCounter counts tiktoken tokens.
type TokenCounter struct {
	encoding *tiktoken.Tiktoken
	mu       sync.Mutex
}

// NewTokenCounter creates a new TokenCounter w/ cl100k_base encoding.
// Loading the encoding may require network access on first use.
func NewTokenCounter() (Counter, error) {
	encoding, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s encoding: %w", encodingName, err)
	}

	return &TokenCounter{encoding: encoding}, nil
}

// Count returns the number of tokens in text. Safe for concurrent use.
func (tc *TokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	tc.mu.Lock()
	tokens := tc.encoding.Encode(text, nil, nil)
	tc.mu.Unlock()

	slog.Debug("Token count calculated", "textLength", len(text), "tokenCount", len(tokens))
	return len(tokens)
}

// Name returns the name of this measure.
func (tc *TokenCounter) Name() string {
	return "tokens (" + encodingName + ")"
}
