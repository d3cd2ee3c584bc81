// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package telematics

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/terminusgps/terminusgps-go/internal/config"
	"github.com/terminusgps/terminusgps-go/internal/logging"
	"github.com/terminusgps/terminusgps-go/internal/metrics"
	"github.com/terminusgps/terminusgps-go/internal/models/wialon"
)

// redactedToken replaces the credential in recorded login parameters.
const redactedToken = "<redacted>"

// LoginInfo carries the auxiliary endpoints and account identity the
// server hands back on a successful login.
type LoginInfo struct {
	GisGeocodeURL string
	GisRenderURL  string
	GisRoutingURL string
	GisSearchURL  string
	GisSID        string
	VideoURL      string
	HwGwDNS       string
	HwGwIP        string
	WsdkVersion   string
	ServerTime    int64
	UserID        int64
	UserName      string
}

// Session is a stateful handle on the remote API: it owns the session
// id issued at login, dispatches every action through its Transport,
// and records each exchange in a bounded CallRecorder.
//
// A Session is safe for concurrent use. Login is single-shot: a second
// Login on a live session is rejected rather than silently re-keyed.
type Session struct {
	cfg       *config.Config
	transport Transport
	recorder  *CallRecorder

	mu   sync.RWMutex
	sid  string
	info *LoginInfo
}

// NewSession builds a session over the given transport. The token and
// recorder capacity come from the wialon config section.
func NewSession(cfg *config.Config, transport Transport) *Session {
	capacity := cfg.Wialon.RecorderCapacity
	if capacity <= 0 {
		capacity = DefaultRecorderCapacity
	}
	return &Session{
		cfg:       cfg,
		transport: transport,
		recorder:  NewCallRecorder(capacity),
	}
}

// SID returns the current session id, or "" when not logged in.
func (s *Session) SID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sid
}

// LoggedIn reports whether the session currently holds a server-issued id.
func (s *Session) LoggedIn() bool {
	return s.SID() != ""
}

// Info returns the identity and endpoint data from the last login, or
// nil when the session has never been entered.
func (s *Session) Info() *LoginInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.info
}

// Recorder exposes the session's call history ring.
func (s *Session) Recorder() *CallRecorder {
	return s.recorder
}

// Login exchanges the configured API token for a session id. A zero
// flags value falls back to DefaultLoginFlags. Calling Login on a
// session that is already live is an error; log out first.
func (s *Session) Login(ctx context.Context, flags LoginFlags) error {
	if flags == 0 {
		flags = DefaultLoginFlags
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sid != "" {
		return &LoginError{cause: errors.New("session already logged in")}
	}

	params := map[string]any{
		"token": s.cfg.Wialon.Token,
		"fl":    int64(flags),
	}
	start := time.Now()
	raw, err := s.transport.Call(ctx, ActionTokenLogin, params, "")
	s.record(ActionTokenLogin, map[string]any{"token": redactedToken, "fl": int64(flags)}, raw, err)
	metrics.RecordRPCCall(ActionTokenLogin, time.Since(start), err)
	if err != nil {
		metrics.SessionLogins.WithLabelValues("failure").Inc()
		recordCallError(ActionTokenLogin, err)
		return &LoginError{cause: err}
	}

	var resp wialon.LoginResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		metrics.SessionLogins.WithLabelValues("failure").Inc()
		return &LoginError{cause: err}
	}
	if resp.EID == "" {
		metrics.SessionLogins.WithLabelValues("failure").Inc()
		return &LoginError{cause: errors.New("login response missing session id")}
	}

	s.sid = resp.EID
	s.info = &LoginInfo{
		GisGeocodeURL: resp.GisGeocode,
		GisRenderURL:  resp.GisRender,
		GisRoutingURL: resp.GisRouting,
		GisSearchURL:  resp.GisSearch,
		GisSID:        resp.GisSID,
		VideoURL:      resp.VideoServiceURL,
		HwGwDNS:       resp.HwGwDNS,
		HwGwIP:        resp.HwGwIP,
		WsdkVersion:   resp.WsdkVersion,
		ServerTime:    resp.ServerTime,
		UserID:        resp.User.ID,
		UserName:      resp.User.Name,
	}
	metrics.SessionLogins.WithLabelValues("success").Inc()
	metrics.SessionsActive.Inc()
	logging.Info().
		Str("user", resp.User.Name).
		Int64("user_id", resp.User.ID).
		Msg("Session established")
	return nil
}

// Logout releases the server-side session. On a session that was never
// entered (or already logged out) it is a no-op that succeeds without
// touching the wire. Local state is cleared even when the server call
// fails, so a session never stays half-closed.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sid == "" {
		metrics.SessionLogouts.WithLabelValues("noop").Inc()
		return nil
	}

	sid := s.sid
	s.sid = ""
	s.info = nil
	metrics.SessionsActive.Dec()

	start := time.Now()
	raw, err := s.transport.Call(ctx, ActionLogout, struct{}{}, sid)
	s.record(ActionLogout, nil, raw, err)
	metrics.RecordRPCCall(ActionLogout, time.Since(start), err)
	if err != nil {
		metrics.SessionLogouts.WithLabelValues("failure").Inc()
		recordCallError(ActionLogout, err)
		return &LogoutError{cause: err}
	}
	var resp wialon.LogoutResponse
	if len(raw) > 0 && json.Unmarshal(raw, &resp) == nil && resp.Error != 0 {
		metrics.SessionLogouts.WithLabelValues("failure").Inc()
		return &LogoutError{cause: fmt.Errorf("server error code %d", resp.Error)}
	}
	metrics.SessionLogouts.WithLabelValues("success").Inc()
	logging.Debug().Msg("Session released")
	return nil
}

// Call dispatches one action on the live session and decodes the raw
// response into result when result is non-nil. Calling on a session
// that is not logged in fails without touching the wire.
func (s *Session) Call(ctx context.Context, action string, params any, result any) error {
	sid := s.SID()
	if sid == "" {
		return invalidArg(action, "session is not logged in")
	}

	start := time.Now()
	raw, err := s.transport.Call(ctx, action, params, sid)
	s.record(action, params, raw, err)
	metrics.RecordRPCCall(action, time.Since(start), err)
	if err != nil {
		recordCallError(action, err)
		return err
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return &CallError{Action: action, Code: ErrCodeTransport, cause: err}
	}
	return nil
}

// record appends one exchange to the session's call history.
func (s *Session) record(action string, params any, raw json.RawMessage, err error) {
	s.recorder.Append(CallRecord{
		Action: action,
		Time:   time.Now(),
		Params: params,
		Result: raw,
		Err:    err,
	})
}

// recordCallError feeds the server error-code metric when the failure
// carries a vendor code.
func recordCallError(action string, err error) {
	var ce *CallError
	if errors.As(err, &ce) {
		metrics.RecordRPCError(action, ce.Code)
	}
}

// WithSession logs the session in, runs fn, and logs out again on
// every exit path, including a panic inside fn. The fn error and any
// logout error are joined so neither is lost; panics are re-raised
// after logout.
func WithSession(ctx context.Context, s *Session, flags LoginFlags, fn func(ctx context.Context, s *Session) error) (err error) {
	if err := s.Login(ctx, flags); err != nil {
		return err
	}
	defer func() {
		logoutErr := s.Logout(ctx)
		err = errors.Join(err, logoutErr)
	}()
	return fn(ctx, s)
}
