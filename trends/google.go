package trends

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/resumecoach/backend/apperr"
	"github.com/resumecoach/backend/config"
	"github.com/resumecoach/backend/utils"
)

// DefaultSearchURL is the public results page scraped for trends
const DefaultSearchURL = "https://www.google.com/search"

// snippetSelector matches the answer boxes of the basic HTML results page
const snippetSelector = "div.BNeawe.vvjwJb.AP7Wnd"

// GoogleScraper extracts trend snippets from the public search results page.
// It makes one request per fetch, without retries or caching.
type GoogleScraper struct {
	searchURL string
	client    *http.Client
}

// DefaultTimeout applies when HTTP_TIMEOUT_SECONDS is not positive
const DefaultTimeout = 30 * time.Second

func httpTimeout(cfg *config.Config) time.Duration {
	timeout := time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
	if timeout <= 0 {
		return DefaultTimeout
	}
	return timeout
}

// NewGoogleScraper creates a scraper using cfg.TrendSearchURL
func NewGoogleScraper(cfg *config.Config) *GoogleScraper {
	return NewGoogleScraperWithClient(cfg.TrendSearchURL, utils.NewHTTPClient(httpTimeout(cfg), utils.BrowserUserAgent))
}

// NewGoogleScraperWithClient creates a scraper against searchURL using client
func NewGoogleScraperWithClient(searchURL string, client *http.Client) *GoogleScraper {
	if searchURL == "" {
		searchURL = DefaultSearchURL
	}
	return &GoogleScraper{searchURL: searchURL, client: client}
}

// SearchURL returns the request URL for query; spaces become '+'
func (s *GoogleScraper) SearchURL(query string) string {
	return s.searchURL + "?q=" + url.QueryEscape(query)
}

// Fetch implements Fetcher
func (s *GoogleScraper) Fetch(ctx context.Context, query string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.SearchURL(query), nil)
	if err != nil {
		return nil, apperr.New(apperr.KindTrends, "trends.google", fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("User-Agent", utils.BrowserUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperr.New(apperr.KindTrends, "trends.google", fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, apperr.Newf(apperr.KindTrends, "trends.google", "search page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, apperr.New(apperr.KindTrends, "trends.google", fmt.Errorf("failed to parse search page: %w", err))
	}

	return collectSnippets(doc.Find(snippetSelector))
}

func collectSnippets(sel *goquery.Selection) ([]string, error) {
	snippets := make([]string, 0, MaxSnippets)
	sel.EachWithBreak(func(i int, s *goquery.Selection) bool {
		if text := strings.TrimSpace(s.Text()); text != "" {
			snippets = append(snippets, text)
		}
		return len(snippets) < MaxSnippets
	})

	if len(snippets) == 0 {
		return nil, ErrNoTrends
	}
	return snippets, nil
}
