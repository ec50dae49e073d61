package recipes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://customsearch.googleapis.com"

// GoogleSearcher queries the Custom Search JSON API. Leave APIKey or
// EngineID empty when no credentials are configured; NewGoogleSearcher then
// returns nil and the caller falls back to the static table.
type GoogleSearcher struct {
	APIKey     string
	EngineID   string
	BaseURL    string
	HTTPClient *http.Client
}

func NewGoogleSearcher(apiKey string, engineID string) *GoogleSearcher {
	if apiKey == "" || engineID == "" {
		return nil
	}
	return &GoogleSearcher{APIKey: apiKey, EngineID: engineID}
}

type googleSearchItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

type googleSearchResponse struct {
	Items []googleSearchItem `json:"items"`
}

func (searcher *GoogleSearcher) Search(ctx context.Context, query string, count int) SearchResult {
	base := searcher.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := searcher.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if count <= 0 {
		count = 5
	}

	params := url.Values{}
	params.Set("key", searcher.APIKey)
	params.Set("cx", searcher.EngineID)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(count))
	params.Set("lr", "lang_ja")
	params.Set("safe", "active")

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/customsearch/v1?"+params.Encode(), nil)
	if err != nil {
		return SearchResult{Err: fmt.Errorf("create search request: %w", err)}
	}

	response, err := httpClient.Do(request)
	if err != nil {
		return SearchResult{Err: fmt.Errorf("execute search request: %w", err)}
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return SearchResult{Err: fmt.Errorf("read search response: %w", err)}
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return SearchResult{Err: fmt.Errorf("search request failed with status %d", response.StatusCode)}
	}

	parsed := googleSearchResponse{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return SearchResult{Err: fmt.Errorf("decode search response: %w", err)}
	}

	items := make([]Recipe, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		items = append(items, Recipe{
			Title:   item.Title,
			URL:     item.Link,
			Snippet: item.Snippet,
			Source:  SourceFromURL(item.Link),
		})
	}
	return SearchResult{Items: items}
}
