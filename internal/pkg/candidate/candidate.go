// Package candidate implements the flight, hotel and POI providers. Each
// provider queries the web search clients, extracts structured records with
// the LLM, falls back to synthesized candidates when everything else fails,
// and returns a normalized, category-sorted list. A provider never fails the
// pipeline outright: the worst outcome is an error the caller downgrades to
// zero candidates.
package candidate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/tripsmith/trip-planner-service/internal/pkg/websearch"
)

// Config is the per-provider configuration shared by all three providers.
type Config struct {
	Timeout      time.Duration
	MaxRetries   int
	RateLimitRPS int
	Limiter      *redis_rate.Limiter
}

// allow consumes one token from the provider's rate-limit budget.
func (c Config) allow(ctx context.Context, name string) error {
	if c.Limiter == nil || c.RateLimitRPS <= 0 {
		return nil
	}

	res, err := c.Limiter.Allow(ctx, fmt.Sprintf("limit:%s", name),
		redis_rate.PerSecond(c.RateLimitRPS))
	if err != nil {
		return fmt.Errorf("failed to rate limit: %w", err)
	}

	if res.Allowed == 0 {
		return ErrProviderRateLimitExceeded
	}

	return nil
}

// searchWithRetry calls a search client with exponential backoff:
// 200ms * 2^attempt between attempts.
func searchWithRetry(ctx context.Context, client websearch.Client,
	query string, maxResults, maxRetries int) ([]websearch.Result, error) {

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		results, err := client.Search(ctx, query, maxResults)
		if err == nil {
			return results, nil
		}

		lastErr = err
		slog.WarnContext(ctx, "search client call failed",
			slog.String("client", client.Name()),
			slog.Int("attempt", attempt+1),
			slog.Any("error", err))

		if attempt < maxRetries {
			backoff := time.Duration(200*(1<<attempt)) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, fmt.Errorf("context cancelled or timeout: %w", ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("search failed after %d attempts: %w", maxRetries+1, lastErr)
}

// parseTimestamp accepts the timestamp shapes that show up in extracted and
// synthesized candidates.
func parseTimestamp(value string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	}

	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}

	return time.Time{}, lastErr
}
