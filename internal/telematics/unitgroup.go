// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package telematics

import (
	"context"
	"strconv"

	"github.com/terminusgps/terminusgps-go/internal/models/wialon"
)

// UnitGroup is the facade for an ordered set of units.
//
// Membership writes are full-list replaces: the server swaps the stored
// set atomically per write, but Add/Remove are read-modify-write and
// can lose updates under concurrent editors.
type UnitGroup struct {
	Item
}

// NewUnitGroup returns a unit-group facade. id 0 means not yet created.
func NewUnitGroup(sess *Session, id int64) *UnitGroup {
	return &UnitGroup{Item: newItem(sess, TypeUnitGroup, id)}
}

// Create registers a new empty group owned by creatorID.
func (g *UnitGroup) Create(ctx context.Context, creatorID int64, name string) error {
	if g.id != 0 {
		return invalidArg(ActionCreateUnitGroup, "group already has id %d", g.id)
	}
	if creatorID == 0 {
		return invalidArg(ActionCreateUnitGroup, "creator id must be non-zero")
	}
	if name == "" {
		return invalidArg(ActionCreateUnitGroup, "name must not be empty")
	}
	params := map[string]any{
		"creatorId": creatorID,
		"name":      name,
		"dataFlags": uint64(DataBase),
	}
	var resp wialon.ItemResponse
	if err := g.sess.Call(ctx, ActionCreateUnitGroup, params, &resp); err != nil {
		return err
	}
	g.setID(resp.Item.ID)
	g.name = resp.Item.Name
	return nil
}

// Members fetches the current membership as an ordered list of unit ids.
func (g *UnitGroup) Members(ctx context.Context) ([]int64, error) {
	if err := g.requireID(ActionSearchItems); err != nil {
		return nil, err
	}
	req := wialon.SearchItemsRequest{
		Spec: wialon.SearchSpec{
			ItemsType:     TypeUnitGroup.Class(),
			PropName:      "sys_id",
			PropValueMask: strconv.FormatInt(g.id, 10),
			SortType:      "sys_id",
		},
		Force: 1,
		Flags: uint64(DataBase),
		From:  0,
		To:    0,
	}
	var resp wialon.SearchItemsResponse
	if err := g.sess.Call(ctx, ActionSearchItems, req, &resp); err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, &CallError{Action: ActionSearchItems, Code: ErrCodeTransport,
			cause: invalidArg(ActionSearchItems, "group %d not found", g.id)}
	}
	return resp.Items[0].MemberIDs, nil
}

// IsMember reports whether the unit currently belongs to the group.
func (g *UnitGroup) IsMember(ctx context.Context, unit *Unit) (bool, error) {
	members, err := g.Members(ctx)
	if err != nil {
		return false, err
	}
	return containsID(members, unit.ID()), nil
}

// Add appends the unit to the membership. Adding a unit that is already
// a member leaves the membership unchanged.
func (g *UnitGroup) Add(ctx context.Context, unit *Unit) error {
	members, err := g.Members(ctx)
	if err != nil {
		return err
	}
	if containsID(members, unit.ID()) {
		return nil
	}
	return g.replaceMembers(ctx, append(members, unit.ID()))
}

// Remove drops the unit from the membership. Removing a non-member
// fails with ErrNotAMember before any write is issued.
func (g *UnitGroup) Remove(ctx context.Context, unit *Unit) error {
	members, err := g.Members(ctx)
	if err != nil {
		return err
	}
	if !containsID(members, unit.ID()) {
		return ErrNotAMember
	}
	next := make([]int64, 0, len(members)-1)
	for _, id := range members {
		if id != unit.ID() {
			next = append(next, id)
		}
	}
	return g.replaceMembers(ctx, next)
}

// Set replaces the whole membership with ids, collapsing duplicates
// while preserving first-seen order.
func (g *UnitGroup) Set(ctx context.Context, ids []int64) error {
	if err := g.requireID(ActionUpdateGroupUnits); err != nil {
		return err
	}
	seen := make(map[int64]struct{}, len(ids))
	next := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		next = append(next, id)
	}
	return g.replaceMembers(ctx, next)
}

// replaceMembers pushes the full membership list to the server.
func (g *UnitGroup) replaceMembers(ctx context.Context, ids []int64) error {
	if err := g.requireID(ActionUpdateGroupUnits); err != nil {
		return err
	}
	if ids == nil {
		ids = []int64{}
	}
	params := map[string]any{"itemId": g.id, "units": ids}
	return g.sess.Call(ctx, ActionUpdateGroupUnits, params, nil)
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
