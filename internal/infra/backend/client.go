// Package backend talks to the REST service that owns resources, customers,
// rental plans and rental records. All endpoints answer with the same
// envelope: {data, success, count, message}.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"coworking-admin/internal/pkg/config"
	"coworking-admin/internal/pkg/errs"
)

// APIError is a non-2xx answer from the backend. Message carries the
// backend's own wording so the panel can surface it verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

func (e *APIError) BackendMessage() string {
	return e.Message
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Success bool            `json:"success"`
	Count   int             `json:"count"`
	Message string          `json:"message"`
}

// Client wraps http.Client with base URL handling so the per-entity
// gateways stay free of transport boilerplate.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(cfg config.BackendConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:   cfg.Token,
		http:    &http.Client{Timeout: timeout},
	}
}

// get fetches an endpoint and decodes the envelope's data into out. A
// missing or null data field leaves out untouched, matching the
// `response.data || []` handling on the consumer side.
func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	env, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return errs.Wrap(err, "failed to decode backend data")
	}
	return nil
}

// send issues a mutating request and returns the backend's message.
func (c *Client) send(ctx context.Context, method, endpoint string, body any) (string, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return "", errs.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	env, err := c.do(ctx, method, endpoint, reader)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader) (envelope, error) {
	url := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return envelope{}, errs.Wrap(err, "failed to build backend request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return envelope{}, errs.Mark(errs.Wrap(err, "backend request failed"), errs.ErrBackendUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return envelope{}, errs.Mark(errs.Wrap(err, "failed to read backend response"), errs.ErrBackendUnavailable)
	}

	var env envelope
	if len(raw) > 0 {
		// Tolerate non-JSON error bodies; the status check below decides.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return envelope{}, &APIError{Status: resp.StatusCode, Message: env.Message}
	}
	return env, nil
}
