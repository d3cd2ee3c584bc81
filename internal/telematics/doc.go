// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

// Package telematics implements the session and object-facade layer for
// the GPS telematics back end.
//
// A Session owns the API token, performs token_login/core_logout against
// the RPC transport, and records every call it issues into a bounded
// CallRecorder. Domain objects (units, unit groups, users, resources,
// retranslators, routes, geofences, notifications) are typed facades
// bound to a Session and an optional server-side id; they are obtained
// through a Factory keyed by type tag, or constructed directly. The
// Renderer manages map message-track layers and produces tile URLs.
//
// # Usage
//
//	transport := telematics.NewHTTPTransport(cfg)
//	sess := telematics.NewSession(cfg, transport)
//	err := telematics.WithSession(ctx, sess, 0, func(ctx context.Context, s *telematics.Session) error {
//	    unit := telematics.NewUnit(s, 0)
//	    if err := unit.Create(ctx, cfg.Wialon.AdminID, "truck-14", 9); err != nil {
//	        return err
//	    }
//	    return unit.AssignPhone(ctx, "+17135550134")
//	})
//
// # Concurrency
//
// A Session is single-threaded by contract: callers that share one
// Session across goroutines must serialise use themselves. The
// CallRecorder, the Manager and the transports are safe for concurrent
// use. Group membership and field CRUD are read-modify-write sequences;
// concurrent editors of the same object can lose updates (last writer
// wins at the server).
package telematics
