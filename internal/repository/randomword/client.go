package randomword

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxBodySize caps how much of the upstream body is decoded
const maxBodySize = 64 << 10

var (
	// ErrUnexpectedStatus is returned for non-2xx upstream responses
	ErrUnexpectedStatus = errors.New("unexpected status from word api")
	// ErrEmptyResponse is returned when the upstream array has no elements
	ErrEmptyResponse = errors.New("word api returned no words")
	// ErrNotAString is returned when the first element is not a JSON string
	ErrNotAString = errors.New("first word api element is not a string")
)

// Client implements repository.WordSource over the random word HTTP API
type Client struct {
	httpClient *http.Client
	url        string
}

// NewClient creates a new word API client
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
	}
}

// NewClientWithHTTP creates a client around an existing http.Client
func NewClientWithHTTP(url string, httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient, url: url}
}

// RandomWord fetches exactly one random word.
// The upstream body must be a single JSON array whose first element is a string.
func (c *Client) RandomWord(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build word api request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call word api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("failed to read word api response: %w", err)
	}

	// Only the first element has to be a string; the rest are ignored
	var words []json.RawMessage
	if err := json.Unmarshal(body, &words); err != nil {
		return "", fmt.Errorf("failed to decode word api response: %w", err)
	}

	if len(words) == 0 {
		return "", ErrEmptyResponse
	}

	// Unmarshal leaves a string untouched for null, so reject it explicitly
	first := bytes.TrimSpace(words[0])
	var word string
	if bytes.Equal(first, []byte("null")) {
		return "", fmt.Errorf("%w: null", ErrNotAString)
	}
	if err := json.Unmarshal(first, &word); err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotAString, first)
	}

	return word, nil
}
