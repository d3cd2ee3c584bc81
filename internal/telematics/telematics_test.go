// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package telematics

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/terminusgps/terminusgps-go/internal/config"
)

// testSID is the session id handed out by the fake login handler.
const testSID = "S1"

// fakeCall captures one dispatch through the fake transport.
type fakeCall struct {
	action string
	params json.RawMessage
	sid    string
}

// fakeTransport scripts responses per action name and records every
// dispatch, so tests can assert both payloads and call counts.
type fakeTransport struct {
	mu       sync.Mutex
	calls    []fakeCall
	handlers map[string]func(params json.RawMessage, sid string) (json.RawMessage, error)
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		handlers: make(map[string]func(params json.RawMessage, sid string) (json.RawMessage, error)),
	}
}

func (f *fakeTransport) handle(action string, fn func(params json.RawMessage, sid string) (json.RawMessage, error)) {
	f.handlers[action] = fn
}

// respond scripts a fixed JSON response for an action.
func (f *fakeTransport) respond(action, body string) {
	f.handle(action, func(json.RawMessage, string) (json.RawMessage, error) {
		return json.RawMessage(body), nil
	})
}

// fail scripts a server-level rejection for an action.
func (f *fakeTransport) fail(action, code, text string) {
	f.handle(action, func(json.RawMessage, string) (json.RawMessage, error) {
		return nil, &CallError{Action: action, Code: code, Text: text}
	})
}

func (f *fakeTransport) Call(ctx context.Context, action string, params any, sid string) (json.RawMessage, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.calls = append(f.calls, fakeCall{action: action, params: raw, sid: sid})
	handler := f.handlers[action]
	f.mu.Unlock()
	if handler == nil {
		return nil, fmt.Errorf("unscripted action %q", action)
	}
	return handler(raw, sid)
}

// count returns the number of dispatches for one action.
func (f *fakeTransport) count(action string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.action == action {
			n++
		}
	}
	return n
}

// total returns the number of dispatches across all actions.
func (f *fakeTransport) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// lastParams decodes the most recent dispatch's parameters for an
// action into out; it fails the test when the action never ran.
func (f *fakeTransport) lastParams(t *testing.T, action string, out any) {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].action != action {
			continue
		}
		if err := json.Unmarshal(f.calls[i].params, out); err != nil {
			t.Fatalf("decode %s params: %v", action, err)
		}
		return
	}
	t.Fatalf("action %s was never dispatched", action)
}

func testConfig() *config.Config {
	return &config.Config{
		Wialon: config.WialonConfig{
			Host:             "https://test-api.example.invalid",
			Token:            "T",
			Timeout:          2 * time.Second,
			RecorderCapacity: 64,
		},
		RateLimit: config.RateLimitConfig{RPS: 1000, Burst: 1000},
	}
}

// newTestSession returns a session over a fresh fake transport with a
// working login handler scripted.
func newTestSession(t *testing.T) (*Session, *fakeTransport) {
	t.Helper()
	ft := newFakeTransport()
	ft.respond(ActionTokenLogin, `{"eid":"`+testSID+`","gis_render":"https://render.example.invalid","user":{"id":27,"nm":"admin"}}`)
	ft.respond(ActionLogout, `{"error":0}`)
	return NewSession(testConfig(), ft), ft
}

// loggedInSession returns a session that has already entered.
func loggedInSession(t *testing.T) (*Session, *fakeTransport) {
	t.Helper()
	s, ft := newTestSession(t)
	if err := s.Login(context.Background(), 0); err != nil {
		t.Fatalf("login: %v", err)
	}
	return s, ft
}
