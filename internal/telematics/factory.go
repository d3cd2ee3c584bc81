// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package telematics

import (
	"context"
	"fmt"
	"strconv"
)

// Facade is the common surface of every kind facade handed out by the
// factory.
type Facade interface {
	Identifiable
	Kind() ItemType
}

// CreateParams carries the union of creation arguments across kinds.
// Each kind reads only the fields it needs; see the per-kind Create
// methods for which ones are required.
type CreateParams struct {
	// CreatorID owns the new object (units, groups, users, resources,
	// routes, retranslators).
	CreatorID int64
	// Name is required by every kind.
	Name string

	// HardwareTypeID selects the device family (units).
	HardwareTypeID int64

	// Password is the initial credential (users).
	Password string

	// SkipCreatorCheck relaxes resource-ownership validation (resources).
	SkipCreatorCheck bool

	// ResourceID scopes geofences and notifications to their owner.
	ResourceID int64

	// X and Y position a geofence.
	X, Y float64
	// Geofence holds zone styling and geometry.
	Geofence GeofenceOptions

	// Activation and Deactivation bound a notification's active window,
	// epoch seconds.
	Activation, Deactivation int64
	// Notification holds trigger options.
	Notification NotificationOptions

	// Retranslator holds the relay target configuration.
	Retranslator RetranslatorConfig
}

// constructable is the registry of tags the factory can build. The
// hardware tag is registered but maps to no facade: device families are
// a server-maintained enumeration.
var constructable = map[ItemType]bool{
	TypeUnit:         true,
	TypeUnitGroup:    true,
	TypeUser:         true,
	TypeResource:     true,
	TypeAccount:      true,
	TypeRoute:        true,
	TypeRetranslator: true,
	TypeGeofence:     true,
	TypeNotification: true,
	TypeHardware:     false,
}

// checkTag validates a type tag against the registry.
func checkTag(tag ItemType) error {
	ok, known := constructable[tag]
	if !known {
		return fmt.Errorf("%w: %q", ErrUnknownTag, string(tag))
	}
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotImplementedKind, string(tag))
	}
	return nil
}

// Create materialises a new server-side object of the given kind: it
// instantiates the facade, runs its create RPC, and verifies an id was
// bound. Unknown tags fail with ErrUnknownTag and the hardware sentinel
// with ErrNotImplementedKind, both before any RPC. A create that leaves
// no id surfaces as *CreationError chaining the underlying failure.
func Create(ctx context.Context, sess *Session, tag ItemType, params CreateParams) (Facade, error) {
	if err := checkTag(tag); err != nil {
		return nil, err
	}

	var (
		f   Facade
		err error
	)
	switch tag {
	case TypeUnit:
		u := NewUnit(sess, 0)
		err = u.Create(ctx, params.CreatorID, params.Name, params.HardwareTypeID)
		f = u
	case TypeUnitGroup:
		g := NewUnitGroup(sess, 0)
		err = g.Create(ctx, params.CreatorID, params.Name)
		f = g
	case TypeUser:
		u := NewUser(sess, 0)
		err = u.Create(ctx, params.CreatorID, params.Name, params.Password)
		f = u
	case TypeResource, TypeAccount:
		r := NewResource(sess, 0)
		err = r.Create(ctx, params.CreatorID, params.Name, params.SkipCreatorCheck)
		f = r
	case TypeRoute:
		r := NewRoute(sess, 0)
		err = r.Create(ctx, params.CreatorID, params.Name)
		f = r
	case TypeRetranslator:
		r := NewRetranslator(sess, 0)
		err = r.Create(ctx, params.CreatorID, params.Name, params.Retranslator)
		f = r
	case TypeGeofence:
		g := NewGeofence(sess, params.ResourceID, 0)
		err = g.Create(ctx, params.Name, params.X, params.Y, params.Geofence)
		f = g
	case TypeNotification:
		n := NewNotification(sess, params.ResourceID, 0)
		err = n.Create(ctx, params.Name, params.Activation, params.Deactivation, params.Notification)
		f = n
	}
	if err != nil {
		return nil, &CreationError{Tag: tag, cause: err}
	}
	if f.ID() == 0 {
		return nil, &CreationError{Tag: tag}
	}
	return f, nil
}

// Get returns a facade bound to an existing object id without issuing
// any RPC. Geofences and notifications come back unscoped; use their
// kind constructors directly when the owning resource id matters.
func Get(sess *Session, tag ItemType, id int64) (Facade, error) {
	if err := checkTag(tag); err != nil {
		return nil, err
	}
	switch tag {
	case TypeUnit:
		return NewUnit(sess, id), nil
	case TypeUnitGroup:
		return NewUnitGroup(sess, id), nil
	case TypeUser:
		return NewUser(sess, id), nil
	case TypeResource, TypeAccount:
		return NewResource(sess, id), nil
	case TypeRoute:
		return NewRoute(sess, id), nil
	case TypeRetranslator:
		return NewRetranslator(sess, id), nil
	case TypeGeofence:
		return NewGeofence(sess, 0, id), nil
	case TypeNotification:
		return NewNotification(sess, 0, id), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTag, string(tag))
}

// GetByStringID is Get for callers holding the id as a decimal string,
// e.g. from a URL path segment. Non-digit strings are rejected before
// the registry lookup.
func GetByStringID(sess *Session, tag ItemType, id string) (Facade, error) {
	parsed, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return Get(sess, tag, parsed)
}

// ParseID converts a decimal object-id string to int64, rejecting
// anything that is not a positive run of digits.
func ParseID(id string) (int64, error) {
	if id == "" {
		return 0, invalidArg("parse id", "id must not be empty")
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return 0, invalidArg("parse id", "id %q is not a decimal number", id)
		}
	}
	parsed, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, invalidArg("parse id", "id %q overflows: %v", id, err)
	}
	return parsed, nil
}
