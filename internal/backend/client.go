// Package backend is the REST client for the Orro Motors booking backend.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"console/internal/domain"
)

const (
	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 16 << 20
)

// Client calls the booking backend. Calls are not retried.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Limiter *rate.Limiter
}

// New builds a client with the given timeout and a limiter of rps requests per
// second (burst equal to rps). rps <= 0 disables limiting.
func New(baseURL string, timeout time.Duration, rps float64) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
	if rps > 0 {
		c.Limiter = rate.NewLimiter(rate.Limit(rps), max(1, int(rps)))
	}
	return c
}

// envelope is the {success, message} frame every backend answer shares.
type envelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e envelope) text() string {
	return strings.TrimSpace(firstNonEmpty(e.Message, e.Error))
}

// do sends one request. op names the call in errors. A non-2xx answer becomes
// domain.UpstreamError, a 2xx answer with success=false becomes
// domain.RejectedError. out may be nil.
func (c *Client) do(ctx context.Context, op, method, path, token string, body, out any) error {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return domain.UpstreamError{Msg: "request cancelled", Err: err}
		}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return domain.InternalError{Msg: "encode " + op, Err: err}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return domain.InternalError{Msg: "build " + op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return domain.UpstreamError{Msg: "Network error", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.UpstreamError{Status: resp.StatusCode, Msg: "Network error", Err: err}
	}

	var env envelope
	_ = json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.text()
		if msg == "" {
			msg = fmt.Sprintf("%s failed", op)
		}
		return domain.UpstreamError{Status: resp.StatusCode, Msg: msg}
	}
	if env.Success != nil && !*env.Success {
		return domain.RejectedError{Op: op, Msg: firstNonEmpty(env.text(), "Failed to "+op)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return domain.UpstreamError{Status: resp.StatusCode, Msg: "malformed response", Err: err}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
