// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package telematics

import (
	"context"

	"github.com/terminusgps/terminusgps-go/internal/models/wialon"
)

// Route is the facade for a scheduled route.
type Route struct {
	Item
}

// NewRoute returns a route facade. id 0 means not yet created.
func NewRoute(sess *Session, id int64) *Route {
	return &Route{Item: newItem(sess, TypeRoute, id)}
}

// Create registers a new route owned by creatorID.
func (r *Route) Create(ctx context.Context, creatorID int64, name string) error {
	if r.id != 0 {
		return invalidArg(ActionCreateRoute, "route already has id %d", r.id)
	}
	if creatorID == 0 {
		return invalidArg(ActionCreateRoute, "creator id must be non-zero")
	}
	if name == "" {
		return invalidArg(ActionCreateRoute, "name must not be empty")
	}
	params := map[string]any{
		"creatorId": creatorID,
		"name":      name,
		"dataFlags": uint64(DataBase),
	}
	var resp wialon.ItemResponse
	if err := r.sess.Call(ctx, ActionCreateRoute, params, &resp); err != nil {
		return err
	}
	r.setID(resp.Item.ID)
	r.name = resp.Item.Name
	return nil
}
