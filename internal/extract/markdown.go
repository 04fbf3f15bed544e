package extract

import (
	"regexp"
	"strings"
	"sync"
)

// markdownPatterns holds compiled patterns for Markdown syntax removal
type markdownPatterns struct {
	codeFence  *regexp.Regexp
	rule       *regexp.Regexp
	image      *regexp.Regexp
	link       *regexp.Regexp
	header     *regexp.Regexp
	blockquote *regexp.Regexp
	bulletList *regexp.Regexp
	numberList *regexp.Regexp
	emphasis   *regexp.Regexp
	escape     *regexp.Regexp
	blankRuns  *regexp.Regexp
}

var (
	patterns     *markdownPatterns
	patternsOnce sync.Once
)

// getMarkdownPatterns returns the singleton instance of compiled patterns
func getMarkdownPatterns() *markdownPatterns {
	patternsOnce.Do(func() {
		patterns = &markdownPatterns{
			codeFence:  regexp.MustCompile("(?m)^[ \t]*(?:\x60{3}|~{3}).*$"),
			rule:       regexp.MustCompile(`(?m)^[ \t]*(?:\* \* \*|-{3,}|_{3,})[ \t]*$`),
			image:      regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`),
			link:       regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`),
			header:     regexp.MustCompile(`(?m)^[ \t]*#{1,6}[ \t]+`),
			blockquote: regexp.MustCompile(`(?m)^[ \t]*>[ \t]?`),
			bulletList: regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]+`),
			numberList: regexp.MustCompile(`(?m)^[ \t]*\d+\\?\.[ \t]+`),
			emphasis:   regexp.MustCompile("\\\\?\\*+|\x60+"),
			escape:     regexp.MustCompile(`\\([\\_\[\]()#+\-.!>|{}])`),
			blankRuns:  regexp.MustCompile(`\n{3,}`),
		}
	})
	return patterns
}

// stripMarkdown removes Markdown syntax, leaving prose separated by whitespace.
func stripMarkdown(markdown string) string {
	p := getMarkdownPatterns()

	text := p.codeFence.ReplaceAllString(markdown, "")
	text = p.rule.ReplaceAllString(text, "")
	text = p.image.ReplaceAllString(text, "$1")
	text = p.link.ReplaceAllString(text, "$1")
	text = p.header.ReplaceAllString(text, "")
	text = p.blockquote.ReplaceAllString(text, "")
	text = p.bulletList.ReplaceAllString(text, "")
	text = p.numberList.ReplaceAllString(text, "")
	text = p.emphasis.ReplaceAllString(text, "")
	text = p.escape.ReplaceAllString(text, "$1")
	text = p.blankRuns.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
