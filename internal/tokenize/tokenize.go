// Package tokenize turns raw text into the normalized word tokens that the
// frequency counters consume.
//
// Normalization is deliberately simple: the punctuation characters , . ? !
// are deleted (not replaced by a space, so "end.Start" becomes "endstart"),
// the text is lowercased with a locale-invariant mapping, and the result is
// split on runs of ASCII whitespace.
//
// Usage Example:
//
//	tokens := tokenize.Tokenize("The cat sat. The dog sat!", tokenize.Options{})
//	// [the cat sat the dog sat]
package tokenize

import (
	"log/slog"
	"strings"

	"github.com/kljensen/snowball"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// punctuationRemover deletes the characters stripped before splitting.
var punctuationRemover = strings.NewReplacer(",", "", ".", "", "?", "", "!", "")

// Options controls optional normalization steps.
type Options struct {
	// Stem reduces each token to its English Snowball stem.
	Stem bool
}

// Tokenize normalizes raw text and splits it into tokens.
// Empty or all-whitespace input yields an empty, non-nil slice; leading and
// trailing whitespace never produce empty tokens.
func Tokenize(raw string, opts Options) []string {
	text := punctuationRemover.Replace(raw)

	// cases.Caser is stateful, so each call gets its own
	text = cases.Lower(language.Und).String(text)

	tokens := strings.FieldsFunc(text, isSpace)
	if tokens == nil {
		tokens = []string{}
	}

	if opts.Stem {
		for i, token := range tokens {
			tokens[i] = stem(token)
		}
	}

	slog.Debug("Tokenized text", "textLength", len(raw), "tokenCount", len(tokens), "stem", opts.Stem)
	return tokens
}

// isSpace reports whether r is ASCII whitespace (space, \t, \n, \v, \f, \r).
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// stem returns the English stem of token, or token itself if stemming fails.
func stem(token string) string {
	stemmed, err := snowball.Stem(token, "english", true)
	if err != nil || stemmed == "" {
		return token
	}
	return stemmed
}
