// Package websearch provides thin HTTP clients for the external search
// providers the candidate agents pull raw results from.
package websearch

import "context"

// Result is one ranked, unstructured search hit.
type Result struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

// Client is the black-box search capability: query in, ranked unstructured
// candidates out.
type Client interface {
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)
	Name() string
}
