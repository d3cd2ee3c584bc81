// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package telematics

import (
	"context"

	"github.com/goccy/go-json"
)

// GeofenceShape selects the zone geometry.
type GeofenceShape int

const (
	ShapeLine    GeofenceShape = 1
	ShapePolygon GeofenceShape = 2
	ShapeCircle  GeofenceShape = 3
)

// Valid reports whether the shape is one of the three known geometries.
func (s GeofenceShape) Valid() bool {
	return s == ShapeLine || s == ShapePolygon || s == ShapeCircle
}

// GeofenceOptions are the optional styling and geometry knobs of a
// zone. Zero values fall back to server defaults.
type GeofenceOptions struct {
	Description string
	// Shape defaults to ShapeCircle when zero.
	Shape GeofenceShape
	// Width is the line width or circle radius in meters.
	Width     int
	Flags     uint64
	Color     uint32
	TextColor uint32
	TextSize  int
	MinZoom   int
	MaxZoom   int
}

// Geofence is the facade for a resource-scoped zone. Zones live inside
// a resource; the facade keeps both the owning resource id and the
// zone's own id.
type Geofence struct {
	Item

	resourceID int64
}

// NewGeofence returns a geofence facade bound to its owning resource.
// id 0 means not yet created.
func NewGeofence(sess *Session, resourceID, id int64) *Geofence {
	return &Geofence{Item: newItem(sess, TypeGeofence, id), resourceID: resourceID}
}

// ResourceID returns the owning resource's id.
func (g *Geofence) ResourceID() int64 { return g.resourceID }

// Create registers a new zone at (x, y) inside the owning resource and
// binds the returned zone id.
func (g *Geofence) Create(ctx context.Context, name string, x, y float64, opts GeofenceOptions) error {
	if g.id != 0 {
		return invalidArg(ActionUpdateZone, "geofence already has id %d", g.id)
	}
	if g.resourceID == 0 {
		return invalidArg(ActionUpdateZone, "owning resource id must be non-zero")
	}
	if name == "" {
		return invalidArg(ActionUpdateZone, "name must not be empty")
	}
	shape := opts.Shape
	if shape == 0 {
		shape = ShapeCircle
	}
	if !shape.Valid() {
		return invalidArg(ActionUpdateZone, "unknown shape %d", int(shape))
	}
	params := map[string]any{
		"itemId":   g.resourceID,
		"id":       0,
		"callMode": "create",
		"n":        name,
		"d":        opts.Description,
		"t":        int(shape),
		"w":        opts.Width,
		"f":        opts.Flags,
		"c":        opts.Color,
		"tc":       opts.TextColor,
		"ts":       opts.TextSize,
		"min":      opts.MinZoom,
		"max":      opts.MaxZoom,
		"p": []map[string]any{
			{"x": x, "y": y, "r": opts.Width},
		},
	}
	id, err := createScopedEntity(ctx, g.sess, ActionUpdateZone, params)
	if err != nil {
		return err
	}
	g.setID(id)
	g.name = name
	return nil
}

// createScopedEntity drives the resource-scoped create actions whose
// response is a two-element array [id, properties].
func createScopedEntity(ctx context.Context, sess *Session, action string, params any) (int64, error) {
	var resp []json.RawMessage
	if err := sess.Call(ctx, action, params, &resp); err != nil {
		return 0, err
	}
	if len(resp) == 0 {
		return 0, &CallError{Action: action, Code: ErrCodeTransport,
			cause: invalidArg(action, "response carried no id element")}
	}
	var id int64
	if err := json.Unmarshal(resp[0], &id); err != nil {
		return 0, &CallError{Action: action, Code: ErrCodeTransport, cause: err}
	}
	return id, nil
}
