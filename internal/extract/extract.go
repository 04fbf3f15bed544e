// Package extract turns fetched content into the plain text that wordfreq
// tokenizes. Plain text passes through untouched; HTML is reduced to its
// readable prose.
package extract

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// Options controls how content is extracted.
type Options struct {
	HTML       bool     // content is HTML
	Selector   string   // CSS selector; implies HTML
	IncludeAll bool     // skip readability filtering for HTML
	BaseURL    *url.URL // optional, gives readability context for relative links
}

// ToText extracts plain text from content.
//
// HTML handling, in order of precedence:
//   - Selector: only elements matching the CSS selector are kept
//   - IncludeAll: the whole document is kept
//   - default: go-readability extracts the main article content
//
// The selected HTML is converted to Markdown and the Markdown syntax is then
// stripped, so tags and formatting markers never reach the word counts.
func ToText(content io.Reader, opts Options) (string, error) {
	if opts.Selector == "" && !opts.HTML {
		data, err := io.ReadAll(content)
		if err != nil {
			return "", fmt.Errorf("failed to read content: %w", err)
		}
		return string(data), nil
	}

	var (
		html string
		err  error
	)
	switch {
	case opts.Selector != "":
		html, err = selectHTML(content, opts.Selector)
	case opts.IncludeAll:
		var data []byte
		data, err = io.ReadAll(content)
		html = string(data)
	default:
		html, err = mainContentHTML(content, opts.BaseURL)
	}
	if err != nil {
		return "", err
	}

	markdown, err := convertToMarkdown(html)
	if err != nil {
		return "", err
	}

	text := stripMarkdown(markdown)
	slog.Debug("Extracted text from HTML", "htmlLength", len(html), "textLength", len(text), "selector", opts.Selector, "includeAll", opts.IncludeAll)
	return text, nil
}

// mainContentHTML uses go-readability to extract the main article content
func mainContentHTML(content io.Reader, baseURL *url.URL) (string, error) {
	if baseURL == nil {
		baseURL = &url.URL{}
	}

	article, err := readability.FromReader(content, baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract main content: %w", err)
	}

	return article.Content, nil
}

// selectHTML returns the outer HTML of every element matching selector
func selectHTML(content io.Reader, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	selection := doc.Find(selector)
	if selection.Length() == 0 {
		return "", fmt.Errorf("no elements found matching selector: %s", selector)
	}

	var parts []string
	selection.Each(func(i int, s *goquery.Selection) {
		if html, err := goquery.OuterHtml(s); err == nil {
			parts = append(parts, html)
		}
	})

	if len(parts) == 0 {
		return "", fmt.Errorf("failed to extract HTML from selection")
	}

	return strings.Join(parts, "\n"), nil
}

// convertToMarkdown converts an HTML string to Markdown
func convertToMarkdown(html string) (string, error) {
	converter := md.NewConverter("", true, &md.Options{
		EmDelimiter:     "*",
		StrongDelimiter: "**",
	})

	markdown, err := converter.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}

	return markdown, nil
}
