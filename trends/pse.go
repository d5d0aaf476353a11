package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/resumecoach/backend/apperr"
	"github.com/resumecoach/backend/config"
	"github.com/resumecoach/backend/utils"
)

// DefaultPSEURL is the Custom Search JSON API endpoint
const DefaultPSEURL = "https://www.googleapis.com/customsearch/v1"

// PSEFetcher reads trend snippets from Google Programmable Search Engine
type PSEFetcher struct {
	apiKey   string
	engineID string
	baseURL  string
	client   *http.Client
}

// PSEResponse represents the Google PSE API response
type PSEResponse struct {
	Items []PSEItem `json:"items"`
}

// PSEItem represents a single search result
type PSEItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// NewPSEFetcher creates a PSE-backed fetcher
func NewPSEFetcher(cfg *config.Config) *PSEFetcher {
	return &PSEFetcher{
		apiKey:   cfg.PSEAPIKey,
		engineID: cfg.PSEEngineID,
		baseURL:  DefaultPSEURL,
		client:   utils.NewHTTPClient(httpTimeout(cfg), ""),
	}
}

// WithBaseURL points the fetcher at a different endpoint
func (f *PSEFetcher) WithBaseURL(baseURL string) *PSEFetcher {
	f.baseURL = baseURL
	return f
}

// Fetch implements Fetcher
func (f *PSEFetcher) Fetch(ctx context.Context, query string) ([]string, error) {
	params := url.Values{}
	params.Set("key", f.apiKey)
	params.Set("cx", f.engineID)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(MaxSnippets))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, apperr.New(apperr.KindTrends, "trends.pse", fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, apperr.New(apperr.KindTrends, "trends.pse", fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.New(apperr.KindTrends, "trends.pse", fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.Newf(apperr.KindTrends, "trends.pse", "PSE API error (status %d): %s", resp.StatusCode, string(body))
	}

	var pseResp PSEResponse
	if err := json.Unmarshal(body, &pseResp); err != nil {
		return nil, apperr.New(apperr.KindTrends, "trends.pse", fmt.Errorf("failed to parse response: %w", err))
	}

	snippets := make([]string, 0, MaxSnippets)
	for _, item := range pseResp.Items {
		text := strings.TrimSpace(item.Snippet)
		if text == "" {
			text = strings.TrimSpace(item.Title)
		}
		if text == "" {
			continue
		}
		snippets = append(snippets, text)
		if len(snippets) == MaxSnippets {
			break
		}
	}

	if len(snippets) == 0 {
		return nil, ErrNoTrends
	}
	return snippets, nil
}
