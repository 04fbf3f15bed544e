package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/chriscorrea/wordfreq/internal/app"
	"github.com/chriscorrea/wordfreq/internal/counter"

	"github.com/spf13/cobra"
)

// buildConfig constructs an app.Config from command flags and arguments
func buildConfig(cmd *cobra.Command, args []string) (app.Config, error) {
	cfg := app.DefaultConfig()

	// get flag values
	topN, _ := cmd.Flags().GetInt("top")
	minLength, _ := cmd.Flags().GetInt("min-length")
	strategyNames, _ := cmd.Flags().GetStringSlice("strategy")
	stem, _ := cmd.Flags().GetBool("stem")
	selector, _ := cmd.Flags().GetString("selector")
	includeAll, _ := cmd.Flags().GetBool("include-all")
	summary, _ := cmd.Flags().GetBool("summary")
	jsonFlag, _ := cmd.Flags().GetBool("json")
	quiet, _ := cmd.Flags().GetBool("quiet")
	debug, _ := cmd.Flags().GetBool("debug")

	if minLength < 0 {
		return app.Config{}, fmt.Errorf("--min-length must not be negative, got %d", minLength)
	}

	// passes run in the order given, duplicates allowed for repeat timings
	strategies := make([]counter.Strategy, 0, len(strategyNames))
	for _, name := range strategyNames {
		strategy, err := counter.ParseStrategy(name)
		if err != nil {
			return app.Config{}, err
		}
		strategies = append(strategies, strategy)
	}
	if len(strategies) == 0 {
		return app.Config{}, fmt.Errorf("--strategy needs at least one of ordered, unordered")
	}

	// no arguments means the built-in default source
	if len(args) > 0 {
		cfg.Sources = args
	}

	if jsonFlag {
		cfg.OutputFormat = app.JSON
	}

	cfg.TopN = topN
	cfg.MinWordLength = minLength
	cfg.Strategies = strategies
	cfg.Stem = stem
	cfg.Selector = selector
	cfg.IncludeAll = includeAll
	cfg.Summary = summary
	cfg.Quiet = quiet
	cfg.Debug = debug

	return cfg, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

var rootCmd = &cobra.Command{
	Use:   "wordfreq [sources...]",
	Short: "Count word frequencies with ordered and hash maps",
	Long: `Wordfreq counts how often each word occurs in a text, reports the most frequent
long words, and times the counting with an ordered map and a hash map.
Sources may include local files, URLs, or standard input ("-").

Words are lowercased and the characters , . ? ! are deleted before splitting on
whitespace. With no sources, "` + app.DefaultSource + `" is read.

Examples:
  wordfreq book.txt
  wordfreq --top 10 --min-length 4 book.txt
  wordfreq --strategy unordered https://example.com/article.html
  cat book.txt | wordfreq -`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := buildConfig(cmd, args)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		// configure logging pending debug flag
		setupLogger(config.Debug)

		// create context with signal handling for graceful shutdown
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		result, err := app.Run(ctx, config)
		if err != nil {
			return fmt.Errorf("wordfreq failed: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), result)

		return nil
	},
}

func init() {
	addFlags(rootCmd)
}

// addFlags registers the wordfreq flags on cmd
func addFlags(cmd *cobra.Command) {
	// selection flags
	cmd.Flags().IntP("top", "n", app.DefaultTopN, "Number of most frequent words to report")
	cmd.Flags().IntP("min-length", "m", app.DefaultMinWordLength, "Only report words longer than this many characters")

	// counting flags
	cmd.Flags().StringSlice("strategy", []string{"ordered", "unordered"}, "Counting passes to run and time, in order (ordered, unordered)")
	cmd.Flags().Bool("stem", false, "Reduce words to their English stems before counting")

	// HTML source flags
	cmd.Flags().StringP("selector", "s", "", "CSS selector for HTML sources")
	cmd.Flags().BoolP("include-all", "i", false, "Count all HTML content without readability filtering")

	// output flags
	cmd.Flags().Bool("summary", false, "Print word, character, and token totals for the input")
	cmd.Flags().Bool("text", false, "Output in plain text format (default)")
	cmd.Flags().Bool("json", false, "Output in JSON format")

	// output format flags are mutually exclusive
	cmd.MarkFlagsMutuallyExclusive("text", "json")

	// other flags
	cmd.Flags().BoolP("quiet", "q", false, "Suppress progress and warning messages")
	cmd.Flags().BoolP("debug", "D", false, "Enable debug logging")
	_ = cmd.Flags().MarkHidden("debug")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
