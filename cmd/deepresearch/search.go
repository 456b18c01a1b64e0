package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

// SearchResult is one hit returned by the SearxNG instance.
type SearchResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

type searxngResponse struct {
	Results []SearchResult `json:"results"`
}

// SearxNGClient queries a SearxNG metasearch instance over its JSON API.
type SearxNGClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewSearxNGClient creates a search client for the given SearxNG base URL.
func NewSearxNGClient(baseURL string) *SearxNGClient {
	return &SearxNGClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Search runs every query against the instance, merges the hits, and returns
// the top maxResults ordered by score. Duplicate URLs keep their best score.
func (c *SearxNGClient) Search(ctx context.Context, queries []string, maxResults int) ([]SearchResult, error) {
	var all []SearchResult
	for _, query := range queries {
		results, err := c.search(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("search %q: %w", query, err)
		}
		all = append(all, results...)
	}
	return mergeResults(all, maxResults), nil
}

func (c *SearxNGClient) search(ctx context.Context, query string) ([]SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("searxng returned status %d", resp.StatusCode)
	}

	var decoded searxngResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode searxng response: %w", err)
	}
	return decoded.Results, nil
}

// mergeResults deduplicates hits by URL, keeping the highest score per URL,
// and returns the top max results ordered by descending score.
func mergeResults(results []SearchResult, max int) []SearchResult {
	best := make(map[string]SearchResult)
	for _, r := range results {
		if r.URL == "" {
			continue
		}
		if prev, ok := best[r.URL]; !ok || r.Score > prev.Score {
			best[r.URL] = r
		}
	}

	merged := make([]SearchResult, 0, len(best))
	for _, r := range best {
		merged = append(merged, r)
	}
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Score != merged[j].Score {
			return merged[i].Score > merged[j].Score
		}
		return merged[i].URL < merged[j].URL
	})

	if max > 0 && len(merged) > max {
		merged = merged[:max]
	}
	return merged
}
