package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/markusmobius/go-trafilatura"
)

// DefaultUserAgent is sent when no user agent is configured
const DefaultUserAgent = "Mozilla/5.0 (compatible; Newsdesk/1.0)"

// Article is the text extracted from a web page
type Article struct {
	URL       string
	Title     string
	Text      string
	Published time.Time
}

// Extractor fetches web pages and extracts their main text with trafilatura
type Extractor struct {
	client    *http.Client
	userAgent string
}

// NewExtractor makes an extractor with the given request timeout
func NewExtractor(timeout time.Duration, userAgent string) *Extractor {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Extractor{client: &http.Client{Timeout: timeout}, userAgent: userAgent}
}

// Extract retrieves the page at urlStr and returns its cleaned main text
func (e *Extractor) Extract(ctx context.Context, urlStr string) (*Article, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid URL: %s", urlStr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	setBrowserHeaders(req, e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, urlStr)
	}

	result, err := trafilatura.Extract(resp.Body, trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		Deduplicate:     true,
		OriginalURL:     parsedURL,
	})
	if err != nil {
		return nil, fmt.Errorf("extract content from %s: %w", urlStr, err)
	}
	if result == nil {
		return nil, fmt.Errorf("no content extracted from %s", urlStr)
	}

	text := CleanText(result.ContentText)
	if text == "" {
		return nil, fmt.Errorf("no text content extracted from %s", urlStr)
	}
	return &Article{
		URL:       urlStr,
		Title:     CleanText(result.Metadata.Title),
		Text:      text,
		Published: result.Metadata.Date,
	}, nil
}
