// Package llm provides the LLM client used for candidate extraction and
// synthetic candidate generation.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// CompletionRequest is a single-turn chat completion request.
type CompletionRequest struct {
	SystemMessage string
	Prompt        string
	Temperature   float64
	MaxTokens     int
}

type CompletionResponse struct {
	Content   string
	Model     string
	TokensIn  int
	TokensOut int
	LatencyMs int64
}

// Client is the interface for LLM providers.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)
	Name() string
}

// ExtractJSONArray pulls the first JSON array embedded in a completion and
// unmarshals it into out. LLM output often wraps the payload in prose or code
// fences, so the array is located by bracket scanning.
func ExtractJSONArray(response string, out interface{}) error {
	start := strings.Index(response, "[")
	end := strings.LastIndex(response, "]")

	if start == -1 || end == -1 || end < start {
		return fmt.Errorf("no JSON array found in response")
	}

	if err := json.Unmarshal([]byte(response[start:end+1]), out); err != nil {
		return fmt.Errorf("unmarshal embedded JSON array: %w", err)
	}

	return nil
}

// ExtractJSONObject pulls the first JSON object embedded in a completion.
func ExtractJSONObject(response string, out interface{}) error {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")

	if start == -1 || end == -1 || end < start {
		return fmt.Errorf("no JSON object found in response")
	}

	if err := json.Unmarshal([]byte(response[start:end+1]), out); err != nil {
		return fmt.Errorf("unmarshal embedded JSON object: %w", err)
	}

	return nil
}
