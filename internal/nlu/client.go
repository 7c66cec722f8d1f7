// Package nlu is the HTTP client for the model sidecar: intent
// classification, entity tagging, and query embedding. The models are
// external collaborators; this package only moves JSON.
package nlu

// #region imports
import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// #endregion

// #region client-struct

// Client talks to the model sidecar over HTTP JSON.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for the sidecar at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:9090"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// #endregion client-struct

// #region wire-types

type textRequest struct {
	Text string `json:"text"`
}

type classifyResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type tagResponse struct {
	Entities []Span `json:"entities"`
}

type embedResponse struct {
	Embedding []float32 `json:"embedding"`
}

// #endregion wire-types

// #region classify

// Classify returns the intent label and confidence for an utterance.
func (c *Client) Classify(ctx context.Context, text string) (Classification, error) {
	var resp classifyResponse
	if err := c.postJSON(ctx, "/classify", textRequest{Text: text}, &resp); err != nil {
		return Classification{}, fmt.Errorf("classify: %w", err)
	}
	return Classification{Label: resp.Label, Score: resp.Score}, nil
}

// #endregion classify

// #region tag

// Tag returns the ordered entity spans for an utterance.
func (c *Client) Tag(ctx context.Context, text string) ([]Span, error) {
	var resp tagResponse
	if err := c.postJSON(ctx, "/tag", textRequest{Text: text}, &resp); err != nil {
		return nil, fmt.Errorf("tag: %w", err)
	}
	return resp.Entities, nil
}

// #endregion tag

// #region embed

// Embed returns the fixed-length embedding vector for a query string.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	var resp embedResponse
	if err := c.postJSON(ctx, "/embed", textRequest{Text: text}, &resp); err != nil {
		return nil, fmt.Errorf("embed: %w", err)
	}
	if len(resp.Embedding) == 0 {
		return nil, fmt.Errorf("embed: empty vector from model service")
	}
	return resp.Embedding, nil
}

// #endregion embed

// #region post-json

func (c *Client) postJSON(ctx context.Context, path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("call %s: status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// #endregion post-json
