package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// DefaultBaseURL serves the public RSS feed of every dev.to user.
const DefaultBaseURL = "https://dev.to/feed"

type Item struct {
	URL         string
	Title       string
	Author      string
	PublishedAt time.Time
	Tags        []string
}

type Fetcher struct {
	parser  *gofeed.Parser
	baseURL string
}

func NewFetcher(timeout time.Duration) *Fetcher {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}
	return &Fetcher{
		parser:  parser,
		baseURL: DefaultBaseURL,
	}
}

// WithBaseURL points the fetcher at another feed host.
func (f *Fetcher) WithBaseURL(base string) *Fetcher {
	f.baseURL = strings.TrimRight(base, "/")
	return f
}

// FetchUserFeed returns the published articles of username, newest first as
// served by the feed.
func (f *Fetcher) FetchUserFeed(ctx context.Context, username string) ([]Item, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	feedURL := f.baseURL + "/" + url.PathEscape(username)
	feed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := make([]Item, 0, len(feed.Items))
	for _, it := range feed.Items {
		item := Item{
			URL:   it.Link,
			Title: it.Title,
			Tags:  it.Categories,
		}

		if it.Author != nil {
			item.Author = it.Author.Name
		} else if len(feed.Authors) > 0 {
			item.Author = feed.Authors[0].Name
		}

		if it.PublishedParsed != nil {
			item.PublishedAt = *it.PublishedParsed
		} else if it.UpdatedParsed != nil {
			item.PublishedAt = *it.UpdatedParsed
		}

		items = append(items, item)
	}

	return items, nil
}
