// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package telematics

import (
	"sync"

	"github.com/terminusgps/terminusgps-go/internal/config"
)

// Manager hands out sessions bound to one configuration and transport
// stack. Most callers want either a fresh session per unit of work
// (Session) or the process-wide shared one (Shared).
type Manager struct {
	cfg       *config.Config
	transport Transport

	mu     sync.Mutex
	shared *Session
}

// NewManager builds a manager over the given transport. Pass nil to
// assemble the default stack: HTTP transport wrapped in the circuit
// breaker when the breaker section enables it.
func NewManager(cfg *config.Config, transport Transport) *Manager {
	if transport == nil {
		transport = NewBreakerTransport(cfg, NewHTTPTransport(cfg))
	}
	return &Manager{cfg: cfg, transport: transport}
}

// Session returns a fresh, not-yet-entered session. The caller owns
// its lifecycle; WithSession is the usual way to scope it.
func (m *Manager) Session() *Session {
	return NewSession(m.cfg, m.transport)
}

// Shared returns the lazily created process-wide session. It is not
// logged in automatically; the first user enters it. Handy for
// long-running services that keep one session alive.
func (m *Manager) Shared() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shared == nil {
		m.shared = NewSession(m.cfg, m.transport)
	}
	return m.shared
}
