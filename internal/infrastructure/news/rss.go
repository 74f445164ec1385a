package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/exp/slog"

	"safetrip/internal/infrastructure/breaker"
)

const noDate = "No date available"

// Entry is one headline.
type Entry struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published"`
}

// Fetcher returns recent headlines about a location.
type Fetcher interface {
	Headlines(ctx context.Context, location string) ([]Entry, error)
}

type Config struct {
	FeedURL  string
	Region   string
	MaxItems int
	Timeout  time.Duration
}

// GoogleNews reads the Google News RSS search feed.
type GoogleNews struct {
	parser  *gofeed.Parser
	cfg     Config
	breaker *breaker.Breaker[[]Entry]
	log     *slog.Logger
}

func NewGoogleNews(cfg Config, log *slog.Logger) *GoogleNews {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = 5
	}
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: cfg.Timeout}

	return &GoogleNews{
		parser:  parser,
		cfg:     cfg,
		breaker: breaker.New[[]Entry]("news", log),
		log:     log.With("component", "google_news"),
	}
}

func (g *GoogleNews) Headlines(ctx context.Context, location string) ([]Entry, error) {
	return g.breaker.Execute(func() ([]Entry, error) {
		feed, err := g.parser.ParseURLWithContext(g.searchURL(location), ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch news feed: %w", err)
		}
		return g.entries(feed), nil
	})
}

func (g *GoogleNews) searchURL(location string) string {
	query := strings.TrimSpace(location)
	if g.cfg.Region != "" {
		query += " " + g.cfg.Region
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("hl", "en-IN")
	q.Set("gl", "IN")
	q.Set("ceid", "IN:en")
	return g.cfg.FeedURL + "?" + q.Encode()
}

func (g *GoogleNews) entries(feed *gofeed.Feed) []Entry {
	out := make([]Entry, 0, g.cfg.MaxItems)
	for _, item := range feed.Items {
		if len(out) == g.cfg.MaxItems {
			break
		}
		if item == nil || item.Title == "" {
			continue
		}
		published := item.Published
		if published == "" {
			published = noDate
		}
		out = append(out, Entry{Title: item.Title, Link: item.Link, Published: published})
	}
	return out
}
