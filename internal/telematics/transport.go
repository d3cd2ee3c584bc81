// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package telematics

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/terminusgps/terminusgps-go/internal/config"
	"github.com/terminusgps/terminusgps-go/internal/models/wialon"
)

// maxErrorBodySize limits the amount of response body read for error
// reporting, preventing unbounded allocation on large error pages.
const maxErrorBodySize = 64 * 1024 // 64KB

// Transport is the collaborator boundary to the remote JSON API. It is
// the only component that touches the wire; the Session never bypasses
// it. Implementations must be safe for concurrent use.
type Transport interface {
	// Call dispatches one action with the given parameter object and
	// session id, returning the raw response payload. Server-level
	// failures (resultCode != Ok) and network failures both surface as
	// *CallError.
	Call(ctx context.Context, action string, params any, sid string) (json.RawMessage, error)
}

// HTTPTransport talks to the back end over HTTPS form POSTs:
// svc=<action>, params=<json>, sid=<session id>.
//
// Resilience:
//   - Outbound pacing via a token bucket (the server enforces
//     per-session request quotas)
//   - Exponential backoff on HTTP 429 honouring Retry-After
//   - Bounded error-body reads
//
// Thread safety: safe for concurrent use; each call builds its own request.
type HTTPTransport struct {
	baseURL        string
	client         *http.Client
	limiter        *rate.Limiter
	maxRetries     int           // Maximum retries for rate limiting
	retryBaseDelay time.Duration // Base delay for exponential backoff
}

var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport builds the production transport from configuration:
// host resolved via the sandbox toggle, 30s default timeout, pacing per
// the ratelimit section.
func NewHTTPTransport(cfg *config.Config) *HTTPTransport {
	timeout := cfg.Wialon.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	rps := cfg.RateLimit.RPS
	if rps <= 0 {
		rps = 10
	}
	burst := cfg.RateLimit.Burst
	if burst < 1 {
		burst = 1
	}
	return &HTTPTransport{
		baseURL:        strings.TrimRight(cfg.Wialon.EffectiveHost(), "/"),
		client:         &http.Client{Timeout: timeout},
		limiter:        rate.NewLimiter(rate.Limit(rps), burst),
		maxRetries:     5,               // Allow up to 5 retries for rate limiting
		retryBaseDelay: 1 * time.Second, // Start with 1 second, doubles each retry
	}
}

// Call implements Transport.
func (t *HTTPTransport) Call(ctx context.Context, action string, params any, sid string) (json.RawMessage, error) {
	if params == nil {
		params = struct{}{}
	}
	payload, err := json.Marshal(params)
	if err != nil {
		return nil, &CallError{Action: action, Code: ErrCodeTransport, cause: fmt.Errorf("encode params: %w", err)}
	}

	if err := t.limiter.Wait(ctx); err != nil {
		return nil, &CallError{Action: action, Code: ErrCodeTransport, cause: err}
	}

	form := url.Values{}
	form.Set("svc", action)
	form.Set("params", string(payload))
	if sid != "" {
		form.Set("sid", sid)
	}

	resp, err := t.doRequestWithRateLimit(ctx, t.baseURL+"/ajax", form)
	if err != nil {
		return nil, &CallError{Action: action, Code: ErrCodeTransport, cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body := readBodyForError(resp.Body)
		return nil, &CallError{
			Action: action,
			Code:   ErrCodeTransport,
			cause:  fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body)),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &CallError{Action: action, Code: ErrCodeTransport, cause: fmt.Errorf("read body: %w", err)}
	}

	if err := checkEnvelope(action, raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// doRequestWithRateLimit performs an HTTP request with automatic rate limit handling.
// Implements exponential backoff for HTTP 429 responses (1s, 2s, 4s, 8s, 16s).
// The context is used for cancellation during backoff waits.
func (t *HTTPTransport) doRequestWithRateLimit(ctx context.Context, reqURL string, form url.Values) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= t.maxRetries; attempt++ {
		// Check context before attempting request
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(form.Encode()))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := t.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("HTTP request failed: %w", err)
		}

		// Success - return response
		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		// Rate limited (HTTP 429) - close body and retry with backoff
		_ = resp.Body.Close()

		// Last attempt - return error
		if attempt == t.maxRetries {
			lastErr = fmt.Errorf("rate limit exceeded after %d retries (HTTP 429)", t.maxRetries)
			break
		}

		// Calculate exponential backoff delay: 1s, 2s, 4s, 8s, 16s
		delay := t.retryBaseDelay * time.Duration(1<<uint(attempt))

		// Check for Retry-After header (RFC 6585)
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := time.ParseDuration(retryAfter + "s"); err == nil {
				delay = seconds
			}
		}

		// Use cancellable wait instead of time.Sleep
		select {
		case <-time.After(delay):
			// Continue to next attempt
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, lastErr
}

// checkEnvelope probes the response for the messages envelope and
// converts a non-Ok result code into a *CallError.
func checkEnvelope(action string, raw []byte) error {
	var env wialon.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		// Some endpoints return bare arrays; those carry no envelope.
		return nil
	}
	if env.Messages.Ok() {
		return nil
	}
	return &CallError{
		Action: action,
		Code:   env.Messages.FirstCode(),
		Text:   env.Messages.Text(),
	}
}

// readBodyForError reads the response body for error reporting (max 64KB).
// Returns the body content or a placeholder message if reading fails.
func readBodyForError(r io.Reader) []byte {
	limitedReader := io.LimitReader(r, maxErrorBodySize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}
