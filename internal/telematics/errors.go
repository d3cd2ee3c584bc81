// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package telematics

import (
	"errors"
	"fmt"
)

// Error codes used by CallError for failures that never reached the
// server's application layer.
const (
	// ErrCodeTransport marks network-level failures (DNS, TLS, timeouts,
	// non-200 HTTP statuses).
	ErrCodeTransport = "transport"
	// ErrCodeBreakerOpen marks calls rejected by the open circuit breaker.
	ErrCodeBreakerOpen = "breaker_open"
)

// Sentinel errors for factory and membership preconditions.
var (
	// ErrUnknownTag is returned by the factory for type tags outside the
	// registry.
	ErrUnknownTag = errors.New("unknown type tag")

	// ErrNotImplementedKind is returned by the factory for registered
	// tags that have no constructable facade (the avl_hw sentinel).
	ErrNotImplementedKind = errors.New("type tag is not constructable")

	// ErrNotAMember is returned when removing a unit that is not part of
	// the group.
	ErrNotAMember = errors.New("unit is not a member of the group")
)

// CallError is any RPC returning non-Ok, or a failure below the
// application layer. Code and Text carry the server diagnostics
// verbatim so logs can be triaged without server-side correlation.
type CallError struct {
	Action string
	Code   string
	Text   string
	cause  error
}

func (e *CallError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("%s failed: %s (%s)", e.Action, e.Text, e.Code)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s failed: %v (%s)", e.Action, e.cause, e.Code)
	}
	return fmt.Sprintf("%s failed (%s)", e.Action, e.Code)
}

func (e *CallError) Unwrap() error { return e.cause }

// LoginError means credentials were rejected or the login response was
// malformed. It is fatal to the Session: the session stays in its
// never-logged-in state.
type LoginError struct {
	cause error
}

func (e *LoginError) Error() string { return fmt.Sprintf("login failed: %v", e.cause) }
func (e *LoginError) Unwrap() error { return e.cause }

// LogoutError means the server rejected core_logout. Local session
// state is cleared regardless.
type LogoutError struct {
	cause error
}

func (e *LogoutError) Error() string { return fmt.Sprintf("logout failed: %v", e.cause) }
func (e *LogoutError) Unwrap() error { return e.cause }

// CreationError means a facade's create RPC succeeded at the transport
// level but left no id to bind, or the create call itself failed. The
// underlying CallError, if any, is chained.
type CreationError struct {
	Tag   ItemType
	cause error
}

func (e *CreationError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("creating %s failed: %v", e.Tag, e.cause)
	}
	return fmt.Sprintf("creating %s failed: server response carried no id", e.Tag)
}

func (e *CreationError) Unwrap() error { return e.cause }

// InvalidArgumentError is a value-level precondition failure at a
// facade boundary. It is raised before any RPC is issued.
type InvalidArgumentError struct {
	Op     string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid argument: %s", e.Op, e.Reason)
}

func invalidArg(op, format string, args ...any) *InvalidArgumentError {
	return &InvalidArgumentError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
