package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultSerpAPITimeout = 15 * time.Second

// SerpAPIClient calls the SerpAPI Google search engine and maps organic
// results onto the common Result shape.
type SerpAPIClient struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

func NewSerpAPIClient(apiURL, apiKey string) *SerpAPIClient {
	return &SerpAPIClient{
		apiURL: apiURL,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: defaultSerpAPITimeout,
		},
	}
}

func (c *SerpAPIClient) Name() string {
	return "serpapi"
}

type serpAPIResponse struct {
	OrganicResults []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
		Link    string `json:"link"`
	} `json:"organic_results"`
}

func (c *SerpAPIClient) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	if c.apiKey == "" {
		// No key configured: the provider treats this as zero results, not an
		// error worth retrying.
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("engine", "google")
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build serpapi request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call serpapi: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serpapi returned status %d", resp.StatusCode)
	}

	var decoded serpAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode serpapi response: %w", err)
	}

	results := make([]Result, 0, maxResults)
	for i, organic := range decoded.OrganicResults {
		if i >= maxResults {
			break
		}
		results = append(results, Result{
			Title:   organic.Title,
			Content: organic.Snippet,
			URL:     organic.Link,
		})
	}

	return results, nil
}
