// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus Metrics Integration for Production Observability
// This package provides instrumentation for:
// - Remote RPC call latency and outcomes (per action name)
// - Session lifecycle (logins, logouts, active sessions)
// - Call recorder occupancy and eviction
// - Circuit breaker state for the RPC transport

var (
	// RPC Call Metrics
	RPCCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "telematics_rpc_call_duration_seconds",
			Help:    "Duration of remote RPC calls in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}, // Optimized for API latency
		},
		[]string{"action"},
	)

	RPCCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telematics_rpc_calls_total",
			Help: "Total number of remote RPC calls",
		},
		[]string{"action", "outcome"}, // outcome: "success", "failure"
	)

	RPCCallErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telematics_rpc_call_errors_total",
			Help: "Total number of remote RPC calls rejected by the server",
		},
		[]string{"action", "code"},
	)

	// Session Lifecycle Metrics
	SessionLogins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telematics_session_logins_total",
			Help: "Total number of session login attempts",
		},
		[]string{"outcome"}, // "success", "failure"
	)

	SessionLogouts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telematics_session_logouts_total",
			Help: "Total number of session logout attempts",
		},
		[]string{"outcome"}, // "success", "failure", "noop"
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "telematics_sessions_active",
			Help: "Current number of logged-in sessions",
		},
	)

	// Call Recorder Metrics
	RecorderRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "telematics_recorder_records",
			Help: "Current number of call records held by the recorder ring",
		},
	)

	RecorderEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "telematics_recorder_evictions_total",
			Help: "Total number of call records dropped by the bounded ring",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordRPCCall records the latency and outcome of a remote RPC call.
func RecordRPCCall(action string, duration time.Duration, err error) {
	RPCCallDuration.WithLabelValues(action).Observe(duration.Seconds())
	if err != nil {
		RPCCallsTotal.WithLabelValues(action, "failure").Inc()
		return
	}
	RPCCallsTotal.WithLabelValues(action, "success").Inc()
}

// RecordRPCError records a server-level rejection with its error code.
// Codes longer than 50 characters are truncated to bound label cardinality.
func RecordRPCError(action, code string) {
	if len(code) > 50 {
		code = code[:50]
	}
	RPCCallErrors.WithLabelValues(action, code).Inc()
}
