// Package naming fetches random words from an external word service for
// use as display names. The service replies with a JSON array of words.
package naming

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Client queries the random-word service. It implements core.NameSource.
type Client struct {
	url     string
	timeout time.Duration
	http    *http.Client
}

// New builds a client for the given word service URL.
func New(url string, timeout time.Duration) *Client {
	return &Client{
		url:     url,
		timeout: timeout,
		http:    &http.Client{Timeout: timeout},
	}
}

// RandomWord fetches a single word. Any transport failure, non-200 status
// or malformed body is returned as an error for the caller to recover from.
func (c *Client) RandomWord(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch word: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("word service returned %d", resp.StatusCode)
	}

	var words []string
	if err := json.NewDecoder(resp.Body).Decode(&words); err != nil {
		return "", fmt.Errorf("decode word response: %w", err)
	}
	if len(words) == 0 || words[0] == "" {
		return "", errors.New("word service returned no words")
	}

	return words[0], nil
}
