// Package client talks to the proxy's POST /ai endpoint and keeps a chat transcript
// the way the browser widget does.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"oracle-backend/internal/models"
)

// ErrRequestFailed covers every failure mode; callers never need to tell them apart.
var ErrRequestFailed = errors.New("oracle request failed")

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 2 * time.Minute}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Ask sends prompt to the proxy and returns the raw reply text.
// Any non-200 status, transport error or undecodable body yields an error wrapping ErrRequestFailed.
func (c *Client) Ask(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(models.ProxyRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ai", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: HTTP error! status: %d", ErrRequestFailed, resp.StatusCode)
	}

	var out struct {
		Response *string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if out.Response == nil {
		return "", fmt.Errorf("%w: response field missing", ErrRequestFailed)
	}
	return *out.Response, nil
}

// CleanReply removes markdown bold markers.
func CleanReply(text string) string {
	return strings.ReplaceAll(text, "**", "")
}

// RenderHTML turns newlines into <br> line breaks.
func RenderHTML(text string) string {
	return strings.ReplaceAll(text, "\n", "<br>")
}
