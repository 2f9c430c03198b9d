// Package llm abstracts text-generation providers behind a single Client
// interface and an ordered fallback chain.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Client turns a prompt into generated text.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// ErrEmptyResponse is returned when a provider answers with no usable text.
var ErrEmptyResponse = errors.New("llm: empty response")

// Chain tries each client in order and returns the first successful answer.
type Chain struct {
	clients []Client
	onError func(name string, err error)
}

// NewChain builds a provider chain. onError receives per-provider failures and
// may be nil.
func NewChain(onError func(name string, err error), clients ...Client) *Chain {
	return &Chain{clients: clients, onError: onError}
}

// Generate walks the chain. It fails only when every provider fails.
func (c *Chain) Generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for _, client := range c.clients {
		out, err := client.Generate(ctx, prompt)
		if err == nil && strings.TrimSpace(out) != "" {
			return out, nil
		}
		if err == nil {
			err = ErrEmptyResponse
		}
		lastErr = err
		if c.onError != nil {
			c.onError(client.Name(), err)
		}
	}
	if lastErr == nil {
		lastErr = errors.New("llm: no providers configured")
	}
	return "", fmt.Errorf("all providers failed: %w", lastErr)
}

// Name implements Client.
func (c *Chain) Name() string { return "chain" }

// ExtractJSON strips markdown code fences so provider answers like
// "```json\n{...}\n```" can be unmarshaled directly.
func ExtractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		return strings.TrimSpace(s)
	}
	// Some providers wrap JSON in prose. Keep only the outermost object.
	if start := strings.Index(s, "{"); start >= 0 {
		if end := strings.LastIndex(s, "}"); end > start {
			return s[start : end+1]
		}
	}
	return s
}

var _ Client = (*Chain)(nil)
