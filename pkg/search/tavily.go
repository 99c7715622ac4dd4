// Package search implements the web search collaborator backed by the
// Tavily API.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/marketintel/researcher/pkg/research"
)

const tavilyURL = "https://api.tavily.com/search"

// TavilyClient queries the Tavily search API.
type TavilyClient struct {
	APIKey     string
	BaseURL    string
	MaxResults int
	HTTPClient *http.Client
}

type tavilyRequest struct {
	APIKey      string `json:"api_key"`
	Query       string `json:"query"`
	SearchDepth string `json:"search_depth"`
	MaxResults  int    `json:"max_results,omitempty"`
}

type tavilyResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

type tavilyResponse struct {
	Results []tavilyResult `json:"results"`
}

func NewTavilyClient(apiKey string, maxResults int) *TavilyClient {
	return &TavilyClient{
		APIKey:     apiKey,
		BaseURL:    tavilyURL,
		MaxResults: maxResults,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Search runs a single search request and coerces each result into a
// Source, defaulting missing fields. Retry policy lives in the caller.
func (c *TavilyClient) Search(ctx context.Context, query string) ([]research.Source, error) {
	body, err := json.Marshal(tavilyRequest{
		APIKey:      c.APIKey,
		Query:       query,
		SearchDepth: "basic",
		MaxResults:  c.MaxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make API request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned non-200 status code: %d, body: %s", resp.StatusCode, string(respBody))
	}

	var parsed tavilyResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal search response: %w", err)
	}

	sources := make([]research.Source, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		sources = append(sources, coerce(r))
	}
	return sources, nil
}

// coerce fills in defaults for fields the API may omit.
func coerce(r tavilyResult) research.Source {
	s := research.Source{Title: r.Title, URL: r.URL, Content: r.Content}
	if s.Title == "" {
		s.Title = "Untitled"
	}
	return s
}
