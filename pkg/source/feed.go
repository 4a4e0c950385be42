package source

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// FeedItem is one entry of a news feed
type FeedItem struct {
	Title     string
	Link      string
	Summary   string
	Text      string
	Published time.Time
}

// Feed is a parsed news feed
type Feed struct {
	Title string
	Link  string
	Items []FeedItem
}

// FeedReader downloads and parses RSS/Atom feeds
type FeedReader struct {
	client    *http.Client
	userAgent string
}

// NewFeedReader makes a feed reader with the given request timeout
func NewFeedReader(timeout time.Duration, userAgent string) *FeedReader {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &FeedReader{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Read fetches the feed at url and returns its items in feed order, limit <= 0 means all.
// Item text comes from the full content when the feed has it, the description otherwise.
func (r *FeedReader) Read(ctx context.Context, url string, limit int) (*Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	setBrowserHeaders(req, r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for feed %s", resp.StatusCode, url)
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", url, err)
	}

	res := &Feed{Title: feed.Title, Link: feed.Link, Items: make([]FeedItem, 0, len(feed.Items))}
	for _, item := range feed.Items {
		if limit > 0 && len(res.Items) >= limit {
			break
		}
		fi := FeedItem{
			Title:   CleanText(item.Title),
			Link:    item.Link,
			Summary: CleanText(item.Description),
		}
		fi.Text = CleanText(item.Content)
		if fi.Text == "" {
			fi.Text = fi.Summary
		}
		if item.PublishedParsed != nil {
			fi.Published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			fi.Published = *item.UpdatedParsed
		}
		res.Items = append(res.Items, fi)
	}
	return res, nil
}
