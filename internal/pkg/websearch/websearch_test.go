//go:build unit

package websearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestTavilyClient_Search(t *testing.T) {
	t.Run("maps_results", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)

			var req tavilyRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "test-key", req.APIKey)
			assert.Equal(t, "basic", req.SearchDepth)
			assert.Equal(t, 5, req.MaxResults)

			json.NewEncoder(w).Encode(tavilyResponse{Results: []Result{
				{Title: "Flights to LA", Content: "cheap flights", URL: "https://example.com"},
			}})
		}))
		defer server.Close()

		c := NewTavilyClient(server.URL, "test-key")

		got, err := c.Search(context.Background(), "flights to Los Angeles", 5)

		assert.NoError(t, err)

		want := []Result{{Title: "Flights to LA", Content: "cheap flights", URL: "https://example.com"}}
		diff := cmp.Diff(want, got)
		if diff != "" {
			t.Fatalf("Search mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("non_200_is_an_error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		c := NewTavilyClient(server.URL, "test-key")

		_, err := c.Search(context.Background(), "anything", 5)

		assert.Error(t, err)
	})
}

func TestSerpAPIClient_Search(t *testing.T) {
	t.Run("maps_organic_results_up_to_limit", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "google", r.URL.Query().Get("engine"))
			assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

			w.Write([]byte(`{"organic_results":[
				{"title":"one","snippet":"first","link":"https://a"},
				{"title":"two","snippet":"second","link":"https://b"},
				{"title":"three","snippet":"third","link":"https://c"}
			]}`))
		}))
		defer server.Close()

		c := NewSerpAPIClient(server.URL, "test-key")

		got, err := c.Search(context.Background(), "hotels", 2)

		assert.NoError(t, err)

		want := []Result{
			{Title: "one", Content: "first", URL: "https://a"},
			{Title: "two", Content: "second", URL: "https://b"},
		}
		diff := cmp.Diff(want, got)
		if diff != "" {
			t.Fatalf("Search mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no_key_returns_no_results", func(t *testing.T) {
		c := NewSerpAPIClient("https://unused.example.com", "")

		got, err := c.Search(context.Background(), "hotels", 5)

		assert.NoError(t, err)
		assert.Empty(t, got)
	})
}
