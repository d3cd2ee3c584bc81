// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

// Package wialon provides data models for the remote telematics API.
//
// This package contains Go struct definitions for the JSON payloads
// exchanged with the Wialon-style back end. Each struct matches the wire
// format with appropriate JSON tags; unknown fields added by server
// updates are ignored by the decoder.
//
// # Response Envelope
//
// Every response may carry a status envelope:
//
//	{
//	    "messages": {
//	        "resultCode": "Ok",
//	        "message": [{"code": "...", "text": "..."}]
//	    }
//	}
//
// A resultCode other than "Ok" marks a server-level failure; the
// transport converts it into a typed error before any payload decoding
// happens. Successful payloads sit alongside the envelope in the same
// object.
//
// # Conventions
//
//   - IDs are int64 (server-assigned, monotonically allocated)
//   - Timestamps are Unix epoch seconds (int64)
//   - Short field names mirror the wire protocol (nm, cls, uid, flds)
//
// # See Also
//
//   - internal/telematics: the session and facade layer using these models
package wialon
