// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package telematics

import (
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/terminusgps/terminusgps-go/internal/metrics"
)

// DefaultRecorderCapacity bounds the call-history ring when no explicit
// capacity is configured.
const DefaultRecorderCapacity = 1024

// CallRecord is one finalised RPC call. Exactly one of Result and Err
// is set. Records are immutable after append.
type CallRecord struct {
	Action string
	Time   time.Time
	// Params is the request parameter object as handed to the transport.
	// Sensitive values (the API token) are redacted by the session
	// before recording.
	Params any
	Result json.RawMessage
	Err    error
}

// Succeeded reports whether the call completed without error.
func (r CallRecord) Succeeded() bool { return r.Err == nil }

// CallRecorder keeps a bounded, chronologically ordered ring of call
// records plus lifetime counters that survive ring eviction, so failure
// rates stay meaningful on long-lived sessions.
//
// Appends are mutex-guarded: a Session shared across goroutines (with
// caller-side serialisation of its RPC use) still records safely.
type CallRecorder struct {
	mu       sync.Mutex
	buf      []CallRecord
	next     int // Index of the next slot to overwrite
	count    int // Occupied slots, <= cap(buf)
	total    uint64
	failures uint64
}

// NewCallRecorder returns a recorder retaining at most capacity records.
// Non-positive capacity selects DefaultRecorderCapacity.
func NewCallRecorder(capacity int) *CallRecorder {
	if capacity <= 0 {
		capacity = DefaultRecorderCapacity
	}
	return &CallRecorder{buf: make([]CallRecord, capacity)}
}

// Append adds a finalised record, evicting the oldest entry when the
// ring is full.
func (c *CallRecorder) Append(rec CallRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.count == len(c.buf) {
		metrics.RecorderEvictions.Inc()
	} else {
		c.count++
	}
	c.buf[c.next] = rec
	c.next = (c.next + 1) % len(c.buf)

	c.total++
	if rec.Err != nil {
		c.failures++
	}
	metrics.RecorderRecords.Set(float64(c.count))
}

// Total is the lifetime number of recorded calls, including evicted ones.
func (c *CallRecorder) Total() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Successes is the lifetime number of successful calls.
func (c *CallRecorder) Successes() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total - c.failures
}

// Failures is the lifetime number of failed calls.
func (c *CallRecorder) Failures() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failures
}

// FailureRate is failures/total. It is only defined when Total() > 0;
// callers must check. For an empty recorder it returns 0.
func (c *CallRecorder) FailureRate() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.total == 0 {
		return 0
	}
	return float64(c.failures) / float64(c.total)
}

// Len is the number of records currently retained by the ring.
func (c *CallRecorder) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Records returns a chronological snapshot of the retained window.
func (c *CallRecorder) Records() []CallRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked(func(CallRecord) bool { return true })
}

// SuccessRecords returns the retained records that completed without error.
func (c *CallRecorder) SuccessRecords() []CallRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked(CallRecord.Succeeded)
}

// FailureRecords returns the retained records that carry an error.
func (c *CallRecorder) FailureRecords() []CallRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked(func(r CallRecord) bool { return !r.Succeeded() })
}

// snapshotLocked copies matching records oldest-first. Callers hold mu.
func (c *CallRecorder) snapshotLocked(match func(CallRecord) bool) []CallRecord {
	out := make([]CallRecord, 0, c.count)
	start := c.next - c.count
	if start < 0 {
		start += len(c.buf)
	}
	for i := 0; i < c.count; i++ {
		rec := c.buf[(start+i)%len(c.buf)]
		if match(rec) {
			out = append(out, rec)
		}
	}
	return out
}
