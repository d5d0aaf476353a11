package trends

import (
	"context"
	"errors"
	"log"

	"github.com/resumecoach/backend/config"
)

// MaxSnippets caps the number of snippets returned by a fetch
const MaxSnippets = 5

// FallbackMessage is shown in place of trends when none could be fetched
const FallbackMessage = "No trends found. Try a different query."

// ErrNoTrends is returned when the upstream answered but nothing matched
var ErrNoTrends = errors.New("no trend snippets found")

// Fetcher returns up to MaxSnippets market trend snippets for a query.
// A successful fetch with no matches returns ErrNoTrends; transport and parse
// failures return an apperr of kind trends.
type Fetcher interface {
	Fetch(ctx context.Context, query string) ([]string, error)
}

// New picks the Programmable Search API when credentials are configured and
// falls back to scraping the public results page otherwise.
func New(cfg *config.Config) Fetcher {
	if cfg.UsePSE() {
		return NewPSEFetcher(cfg)
	}
	return NewGoogleScraper(cfg)
}

// WithFallback returns snippets when err is nil and the one-element fallback list otherwise
func WithFallback(snippets []string, err error) []string {
	if err != nil || len(snippets) == 0 {
		return []string{FallbackMessage}
	}
	return snippets
}

// Result is the outcome of a fetch as presented to users
type Result struct {
	Trends   []string
	Degraded bool
	Reason   string
}

// Resolve fetches trends and degrades to the fallback list on any failure,
// recording why in the result.
func Resolve(ctx context.Context, f Fetcher, query string) Result {
	snippets, err := f.Fetch(ctx, query)
	if err != nil {
		if errors.Is(err, ErrNoTrends) {
			log.Printf("[Trends] No results for query %q", query)
		} else {
			log.Printf("[Trends] Fetch failed for query %q: %v", query, err)
		}
		return Result{Trends: WithFallback(nil, err), Degraded: true, Reason: err.Error()}
	}

	log.Printf("[Trends] Fetched %d snippets for query %q", len(snippets), query)
	return Result{Trends: WithFallback(snippets, nil)}
}
