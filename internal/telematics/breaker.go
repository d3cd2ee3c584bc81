// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package telematics

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"

	"github.com/terminusgps/terminusgps-go/internal/config"
	"github.com/terminusgps/terminusgps-go/internal/logging"
	"github.com/terminusgps/terminusgps-go/internal/metrics"
)

// breakerName identifies this breaker in logs and metrics.
const breakerName = "wialon-api"

// BreakerTransport wraps a Transport with a circuit breaker so that a
// misbehaving back end fails fast instead of tying up callers.
//
// The breaker opens when the failure ratio exceeds the configured
// threshold over a minimum number of requests, then allows a limited
// number of probe requests after the timeout elapses.
type BreakerTransport struct {
	inner   Transport
	breaker *gobreaker.CircuitBreaker[json.RawMessage]
}

var _ Transport = (*BreakerTransport)(nil)

// NewBreakerTransport wraps inner with a circuit breaker configured
// from the breaker section. When the section is disabled, inner is
// returned unchanged.
func NewBreakerTransport(cfg *config.Config, inner Transport) Transport {
	if !cfg.Breaker.Enabled {
		return inner
	}

	maxRequests := cfg.Breaker.MaxRequests
	if maxRequests == 0 {
		maxRequests = 3
	}
	interval := cfg.Breaker.Interval
	if interval <= 0 {
		interval = time.Minute
	}
	timeout := cfg.Breaker.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	failureRatio := cfg.Breaker.FailureRatio
	if failureRatio <= 0 {
		failureRatio = 0.6
	}
	minRequests := cfg.Breaker.MinRequests
	if minRequests == 0 {
		minRequests = 10
	}

	settings := gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: maxRequests,
		Interval:    interval,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(float64(counts.ConsecutiveFailures))
			if counts.Requests < uint32(minRequests) {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= failureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
		},
	}

	bt := &BreakerTransport{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker[json.RawMessage](settings),
	}
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(breakerStateValue(gobreaker.StateClosed))
	return bt
}

// Call implements Transport. Requests rejected by an open breaker
// surface as *CallError with code "breaker_open" so callers can tell
// a tripped breaker from a genuine server failure.
func (t *BreakerTransport) Call(ctx context.Context, action string, params any, sid string) (json.RawMessage, error) {
	raw, err := t.breaker.Execute(func() (json.RawMessage, error) {
		return t.inner.Call(ctx, action, params, sid)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected").Inc()
			return nil, &CallError{Action: action, Code: ErrCodeBreakerOpen, cause: err}
		}
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()
		return nil, err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()
	return raw, nil
}

// breakerStateValue maps gobreaker states to gauge values:
// 0=closed, 1=half-open, 2=open.
func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	default:
		return 2
	}
}
