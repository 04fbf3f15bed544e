// Package fetch opens the text sources wordfreq analyzes:
// local files, standard input, and http(s) URLs.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/retry"
)

// Size limits; sources are read fully into memory.
const (
	MaxFileSizeBytes = 50 * 1024 * 1024  // 50MB limit for files and stdin
	MaxHTTPSizeBytes = 100 * 1024 * 1024 // 100MB limit for HTTP content (may not have Content-Length)
)

// Stdin is the source name that reads standard input.
const Stdin = "-"

// HTTPRequestTimeout bounds a single HTTP attempt.
const HTTPRequestTimeout = 30 * time.Second

// Retry settings for transient HTTP failures.
const (
	maxFetchAttempts = 3
	maxRetryDelay    = 5 * time.Second
)

// initialRetryDelay is a variable so tests can shorten it.
var initialRetryDelay = 500 * time.Millisecond

// errTransient marks failures worth retrying (network errors, 429, 5xx).
var errTransient = errors.New("transient fetch failure")

// Document is an opened source.
type Document struct {
	Body   io.ReadCloser
	Source string
	HTML   bool // content should go through HTML extraction
}

// Close releases the underlying reader.
func (d *Document) Close() error {
	return d.Body.Close()
}

// limitedReadCloser wraps an io.ReadCloser to enforce size limits
type limitedReadCloser struct {
	io.ReadCloser
	N      int64  // max bytes remaining
	source string // for error messages
}

func (l *limitedReadCloser) Read(p []byte) (n int, err error) {
	if l.N <= 0 {
		return 0, fmt.Errorf("content from %q exceeds size limit", l.source)
	}
	if int64(len(p)) > l.N {
		p = p[0:l.N]
	}
	n, err = l.ReadCloser.Read(p)
	l.N -= int64(n)
	return
}

var httpClient = &http.Client{
	Timeout: HTTPRequestTimeout,
	Transport: &http.Transport{
		Dial: (&net.Dialer{
			Timeout: HTTPRequestTimeout / 6,
		}).Dial,
		TLSHandshakeTimeout:   HTTPRequestTimeout / 6,
		ResponseHeaderTimeout: HTTPRequestTimeout / 2,
		DisableKeepAlives:     true,
	},
}

// GetContent opens a source and returns it as a Document.
// It supports three types of sources:
//   - "-" reads from standard input
//   - URLs starting with "http://" or "https://" are fetched via HTTP
//   - everything else is treated as a local file path
//
// The caller must Close the returned Document.
func GetContent(ctx context.Context, source string) (*Document, error) {
	switch {
	case source == Stdin:
		return &Document{
			Body: &limitedReadCloser{
				ReadCloser: io.NopCloser(os.Stdin),
				N:          MaxFileSizeBytes,
				source:     "stdin",
			},
			Source: "stdin",
		}, nil
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		return fetchURL(ctx, source)
	default:
		return fetchFile(source)
	}
}

// fetchURL retrieves an HTTP(S) URL, retrying transient failures with backoff.
func fetchURL(ctx context.Context, url string) (*Document, error) {
	var resp *http.Response

	err := retry.Do(
		func() error {
			var err error
			resp, err = getOnce(ctx, url)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(maxFetchAttempts),
		retry.Delay(initialRetryDelay),
		retry.MaxDelay(maxRetryDelay),
		retry.DelayType(retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)),
		retry.MaxJitter(initialRetryDelay/4),
		retry.OnRetry(func(n uint, err error) {
			slog.Debug("Retrying fetch", "url", url, "attempt", n+1, "maxAttempts", maxFetchAttempts, "error", err)
		}),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, errTransient)
		}),
	)
	if err != nil {
		return nil, err
	}

	return &Document{
		Body: &limitedReadCloser{
			ReadCloser: resp.Body,
			N:          MaxHTTPSizeBytes,
			source:     url,
		},
		Source: url,
		HTML:   isHTMLContentType(resp.Header.Get("Content-Type")),
	}, nil
}

// getOnce performs a single GET; on success the caller owns resp.Body.
func getOnce(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for URL %q: %w", url, err)
	}
	req.Header.Set("User-Agent", "wordfreq/0.1")

	resp, err := httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("failed to fetch URL %q: %w", url, err)
		}
		return nil, fmt.Errorf("failed to fetch URL %q: %w: %w", url, errTransient, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		err := fmt.Errorf("HTTP request failed for URL %q: status %s", url, resp.Status)
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return nil, fmt.Errorf("%w: %w", errTransient, err)
		}
		return nil, err
	}

	if contentLength := resp.Header.Get("Content-Length"); contentLength != "" {
		if size, err := strconv.ParseInt(contentLength, 10, 64); err == nil && size > MaxHTTPSizeBytes {
			resp.Body.Close()
			return nil, fmt.Errorf("HTTP content too large (%d bytes > %d bytes limit)", size, MaxHTTPSizeBytes)
		}
	}

	return resp, nil
}

// fetchFile opens a local file after checking it exists and fits the size limit.
func fetchFile(path string) (*Document, error) {
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file %q does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to access file %q: %w", path, err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%q is a directory", path)
	}

	if fileInfo.Size() > MaxFileSizeBytes {
		return nil, fmt.Errorf("file %q is too large (%d bytes > %d bytes limit)",
			path, fileInfo.Size(), MaxFileSizeBytes)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	return &Document{
		Body:   file,
		Source: path,
		HTML:   ext == ".html" || ext == ".htm",
	}, nil
}

func isHTMLContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}
