// Package summary wraps the external post summarization model. The model is
// an opaque seq2seq service reached over HTTP; this package only shapes the
// request and bounds the stored result.
package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	// maxGenerateLength caps the model's generated token length
	maxGenerateLength = 200
	// maxStoredLength matches the summary column width
	maxStoredLength = 255
)

// Summarizer produces a short summary of post content
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Client calls a text2text inference endpoint. No deadline is set beyond
// what the request context carries, so a client disconnect cancels the call.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a Client for the given inference endpoint
func NewClient(endpoint string) *Client {
	return &Client{endpoint: endpoint, http: http.DefaultClient}
}

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	MaxLength int `json:"max_length"`
}

type inferenceResult struct {
	SummaryText string `json:"summary_text"`
}

// Summarize sends the text to the inference endpoint and returns the
// generated summary, truncated to the stored column width.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	payload, err := json.Marshal(inferenceRequest{
		Inputs:     text,
		Parameters: inferenceParameters{MaxLength: maxGenerateLength},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("summary endpoint returned status %d", resp.StatusCode)
	}

	var results []inferenceResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", fmt.Errorf("summary endpoint returned no result")
	}
	return truncate(results[0].SummaryText, maxStoredLength), nil
}

// Noop is used when no inference endpoint is configured; the summary is the
// leading slice of the content itself.
type Noop struct{}

// Summarize returns the truncated input
func (Noop) Summarize(_ context.Context, text string) (string, error) {
	return truncate(text, maxStoredLength), nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
