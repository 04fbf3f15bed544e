// Package app contains the core application logic for the wordfreq CLI tool.
// It handles the main business logic separated from CLI concerns.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/chriscorrea/wordfreq/internal/counter"
	"github.com/chriscorrea/wordfreq/internal/extract"
	"github.com/chriscorrea/wordfreq/internal/fetch"
	"github.com/chriscorrea/wordfreq/internal/spinner"
	"github.com/chriscorrea/wordfreq/internal/tokenize"
	"github.com/chriscorrea/wordfreq/internal/topk"
	"github.com/chriscorrea/wordfreq/internal/units"

	"golang.org/x/sync/errgroup"
)

// Defaults applied when the CLI is run without flags.
const (
	DefaultSource        = "Dropped stitches in Tennessee history by John Allison.txt"
	DefaultTopN          = 5
	DefaultMinWordLength = 6
)

// Config holds all configuration options for the wordfreq application.
type Config struct {
	Sources       []string           // file paths, URLs, or "-" for stdin
	TopN          int                // number of words reported per pass
	MinWordLength int                // reported words are strictly longer than this
	Strategies    []counter.Strategy // counting passes, run in this order
	Stem          bool               // reduce tokens to Snowball stems
	Selector      string             // CSS selector for HTML sources
	IncludeAll    bool               // HTML without readability filtering
	Summary       bool               // measure the input (words, characters, tokens)
	OutputFormat  OutputFormat
	Quiet         bool // suppress spinner and warnings
	Debug         bool
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Sources:       []string{DefaultSource},
		TopN:          DefaultTopN,
		MinWordLength: DefaultMinWordLength,
		Strategies:    []counter.Strategy{counter.Ordered, counter.Unordered},
		OutputFormat:  Text,
	}
}

// Pass is the outcome of counting with one strategy.
type Pass struct {
	Strategy      counter.Strategy `json:"strategy"`
	Label         string           `json:"label"`
	TopWords      []topk.WordCount `json:"topWords"`
	DistinctWords int              `json:"distinctWords"`
	TotalWords    int              `json:"totalWords"`
	Elapsed       time.Duration    `json:"elapsedNanoseconds"` // counting plus top-word selection
}

// Measure is one input size figure for the summary.
type Measure struct {
	Unit  string `json:"unit"`
	Count int    `json:"count"`
}

// Report is everything wordfreq prints.
type Report struct {
	Summary []Measure `json:"summary,omitempty"`
	Passes  []Pass    `json:"passes"`
}

// progress receives status while sources load. *spinner.Spinner satisfies it.
type progress interface {
	UpdateMessage(message string)
	IsActive() bool
	Stop()
}

// Run executes wordfreq with the given configuration and returns the
// rendered report.
//
// ctx allows for cancellation of source loading.
func Run(ctx context.Context, cfg Config) (string, error) {
	var p progress
	if !cfg.Quiet {
		sp := spinner.New(ctx, os.Stderr, "Loading sources...")
		sp.Start()
		defer sp.Stop()
		p = sp
	}

	report, err := analyze(ctx, cfg, p)
	if err != nil {
		return "", err
	}

	return Render(report, cfg.OutputFormat)
}

// Analyze loads the sources, tokenizes them once, and runs one timed
// counting pass per configured strategy.
//
// Processing Pipeline:
// 1. Load and combine content from all sources (loadSources)
// 2. Tokenize the combined text
// 3. For each strategy: build the table and select top words, timed together
func Analyze(ctx context.Context, cfg Config) (*Report, error) {
	return analyze(ctx, cfg, nil)
}

// analyze is Analyze with optional progress reporting; p may be nil.
func analyze(ctx context.Context, cfg Config, p progress) (*Report, error) {
	if len(cfg.Sources) == 0 {
		return nil, fmt.Errorf("no sources provided")
	}
	if len(cfg.Strategies) == 0 {
		return nil, fmt.Errorf("no counting strategies selected")
	}
	if err := checkStdinOnce(cfg.Sources); err != nil {
		return nil, err
	}

	// step 1: load content
	text, err := loadSources(ctx, cfg, p)
	if err != nil {
		return nil, err
	}

	// the spinner goroutine must not run during the timed passes
	if p != nil && p.IsActive() {
		p.Stop()
	}

	// step 2: tokenize once; every pass counts the same tokens
	tokens := tokenize.Tokenize(text, tokenize.Options{Stem: cfg.Stem})

	report := &Report{Passes: make([]Pass, 0, len(cfg.Strategies))}
	if cfg.Summary {
		report.Summary = summarize(text, cfg.Quiet)
	}

	// step 3: sequential passes on this goroutine so timings are comparable
	for _, strategy := range cfg.Strategies {
		fc, err := counter.NewCounter(strategy)
		if err != nil {
			return nil, err
		}
		report.Passes = append(report.Passes, runPass(strategy, fc, tokens, cfg.TopN, cfg.MinWordLength))
	}

	return report, nil
}

// checkStdinOnce rejects more than one "-" source, since concurrent loads
// would split standard input between them.
func checkStdinOnce(sources []string) error {
	stdin := 0
	for _, source := range sources {
		if source == fetch.Stdin {
			stdin++
		}
	}
	if stdin > 1 {
		return fmt.Errorf("standard input (%q) may only be given once, got %d", fetch.Stdin, stdin)
	}
	return nil
}

// runPass counts tokens with fc and selects the top words, timing both steps.
func runPass(strategy counter.Strategy, fc counter.FrequencyCounter, tokens []string, topN, minWordLength int) Pass {
	start := time.Now()
	table := fc.Count(tokens)
	top := topk.TopWords(table, topN, minWordLength)
	elapsed := time.Since(start)

	slog.Debug("Counting pass finished", "strategy", strategy, "distinctWords", table.Len(), "elapsed", elapsed)

	return Pass{
		Strategy:      strategy,
		Label:         fc.Name(),
		TopWords:      top,
		DistinctWords: table.Len(),
		TotalWords:    table.Total(),
		Elapsed:       elapsed,
	}
}

// loadSources reads every source concurrently and joins their text in
// argument order, separated by a blank line. The first failure cancels the
// remaining loads and is returned. p, if non-nil, is told as each source
// finishes.
func loadSources(ctx context.Context, cfg Config, p progress) (string, error) {
	contents := make([]string, len(cfg.Sources))
	var loaded atomic.Int32

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, source := range cfg.Sources {
		g.Go(func() error {
			text, err := loadSource(ctx, source, cfg.Selector, cfg.IncludeAll)
			if err != nil {
				return fmt.Errorf("failed to process source %q: %w", source, err)
			}
			contents[i] = text

			n := loaded.Add(1)
			if p != nil {
				p.UpdateMessage(fmt.Sprintf("Loaded %d of %d sources...", n, len(cfg.Sources)))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}

	return strings.Join(contents, "\n\n"), nil
}

// loadSource fetches a single source and extracts its text.
func loadSource(ctx context.Context, source, selector string, includeAll bool) (string, error) {
	doc, err := fetch.GetContent(ctx, source)
	if err != nil {
		return "", err
	}
	defer doc.Close()

	var baseURL *url.URL
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		baseURL, _ = url.Parse(source) // ignore parse errors, will use nil
	}

	text, err := extract.ToText(doc.Body, extract.Options{
		HTML:       doc.HTML,
		Selector:   selector,
		IncludeAll: includeAll,
		BaseURL:    baseURL,
	})
	if err != nil {
		return "", fmt.Errorf("failed to extract content: %w", err)
	}

	slog.Debug("Source loaded", "source", doc.Source, "html", doc.HTML, "textLength", len(text))
	return text, nil
}

// summarize measures the raw input. The token measure is skipped with a
// warning if the tiktoken encoding cannot be loaded.
func summarize(text string, quiet bool) []Measure {
	var measures []Measure
	for _, method := range []units.Method{units.Words, units.Characters, units.Tokens} {
		c, err := units.NewCounter(method)
		if err != nil {
			slog.Debug("Measure unavailable", "method", method, "error", err)
			if !quiet {
				fmt.Fprintf(os.Stderr, "Warning: %s unavailable: %v\n", method, err)
			}
			continue
		}
		measures = append(measures, Measure{Unit: c.Name(), Count: c.Count(text)})
	}
	return measures
}
