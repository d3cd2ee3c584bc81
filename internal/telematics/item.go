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

// Item is the facade base embedded by every domain kind. It holds a
// non-owning back-reference to the Session, the kind tag, and the
// server-side id (0 until creation binds one).
//
// Every mutating operation preconditions a bound id and fails with
// *InvalidArgumentError before any RPC when it is missing.
type Item struct {
	sess *Session
	kind ItemType
	id   int64

	// Cached by Populate; refreshed on demand, never implicitly.
	name     string
	class    string
	uniqueID string
}

// newItem builds the base for a kind facade. id 0 means not yet created.
func newItem(sess *Session, kind ItemType, id int64) Item {
	return Item{sess: sess, kind: kind, id: id}
}

// ID returns the server-side id, or 0 when the object has not been
// created or was deleted.
func (i *Item) ID() int64 { return i.id }

// Kind returns the facade's type tag.
func (i *Item) Kind() ItemType { return i.kind }

// Name returns the display name cached by the last Populate.
func (i *Item) Name() string { return i.name }

// Class returns the server class tag cached by the last Populate.
func (i *Item) Class() string { return i.class }

// UniqueID returns the hardware identifier cached by the last Populate.
func (i *Item) UniqueID() string { return i.uniqueID }

// Session returns the session this facade issues calls through.
func (i *Item) Session() *Session { return i.sess }

// setID binds the id returned by a create action.
func (i *Item) setID(id int64) { i.id = id }

// requireID fails fast when the facade has no bound id yet.
func (i *Item) requireID(op string) error {
	if i.id == 0 {
		return invalidArg(op, "%s has no id; create or fetch it first", i.kind)
	}
	return nil
}

// Rename changes the display name.
func (i *Item) Rename(ctx context.Context, name string) error {
	if err := i.requireID(ActionUpdateName); err != nil {
		return err
	}
	if name == "" {
		return invalidArg(ActionUpdateName, "name must not be empty")
	}
	params := map[string]any{"itemId": i.id, "name": name}
	if err := i.sess.Call(ctx, ActionUpdateName, params, nil); err != nil {
		return err
	}
	i.name = name
	return nil
}

// Delete removes the object server-side and clears the local id, so
// further mutations fail fast.
func (i *Item) Delete(ctx context.Context) error {
	if err := i.requireID(ActionDeleteItem); err != nil {
		return err
	}
	params := map[string]any{"itemId": i.id}
	if err := i.sess.Call(ctx, ActionDeleteItem, params, nil); err != nil {
		return err
	}
	i.id = 0
	return nil
}

// AddCustomField creates a custom field and returns its server-assigned id.
func (i *Item) AddCustomField(ctx context.Context, name, value string) (int64, error) {
	return i.writeField(ctx, ActionUpdateCustomField, 0, name, value)
}

// UpdateCustomField rewrites an existing custom field by id.
func (i *Item) UpdateCustomField(ctx context.Context, fieldID int64, name, value string) error {
	if fieldID == 0 {
		return invalidArg(ActionUpdateCustomField, "field id must be non-zero for updates")
	}
	_, err := i.writeField(ctx, ActionUpdateCustomField, fieldID, name, value)
	return err
}

// AddAdminField creates an administrative field and returns its id.
func (i *Item) AddAdminField(ctx context.Context, name, value string) (int64, error) {
	return i.writeField(ctx, ActionUpdateAdminField, 0, name, value)
}

// UpdateAdminField rewrites an existing administrative field by id.
func (i *Item) UpdateAdminField(ctx context.Context, fieldID int64, name, value string) error {
	if fieldID == 0 {
		return invalidArg(ActionUpdateAdminField, "field id must be non-zero for updates")
	}
	_, err := i.writeField(ctx, ActionUpdateAdminField, fieldID, name, value)
	return err
}

// writeField drives both field families: field id 0 selects callMode
// create, non-zero selects update.
func (i *Item) writeField(ctx context.Context, action string, fieldID int64, name, value string) (int64, error) {
	if err := i.requireID(action); err != nil {
		return 0, err
	}
	if name == "" {
		return 0, invalidArg(action, "field name must not be empty")
	}
	callMode := "create"
	if fieldID != 0 {
		callMode = "update"
	}
	params := map[string]any{
		"itemId":   i.id,
		"id":       fieldID,
		"callMode": callMode,
		"n":        name,
		"v":        value,
	}
	var resp wialon.FieldResponse
	if err := i.sess.Call(ctx, action, params, &resp); err != nil {
		return 0, err
	}
	if resp.Field.ID != 0 {
		return resp.Field.ID, nil
	}
	return resp.ID, nil
}

// SetCustomProperty writes one scalar key/value property. Writes are
// last-writer-wins; there is no compare-and-set.
func (i *Item) SetCustomProperty(ctx context.Context, name, value string) error {
	if err := i.requireID(ActionUpdateCustomProperty); err != nil {
		return err
	}
	if name == "" {
		return invalidArg(ActionUpdateCustomProperty, "property name must not be empty")
	}
	params := map[string]any{"itemId": i.id, "name": name, "value": value}
	return i.sess.Call(ctx, ActionUpdateCustomProperty, params, nil)
}

// SetProfileField writes one vehicle-profile field. The field name must
// belong to the closed ProfileField set; unknown names are rejected
// before any RPC.
func (i *Item) SetProfileField(ctx context.Context, field ProfileField, value string) error {
	if err := i.requireID(ActionUpdateProfileField); err != nil {
		return err
	}
	if !field.Valid() {
		return invalidArg(ActionUpdateProfileField, "unknown profile field %q", string(field))
	}
	params := map[string]any{
		"itemId": i.id,
		"n":      string(field),
		"v":      value,
	}
	return i.sess.Call(ctx, ActionUpdateProfileField, params, nil)
}

// HasAccess reports whether the given accessor holds any rights on this
// object, per the server's accessor check.
func (i *Item) HasAccess(ctx context.Context, accessorID int64) (bool, error) {
	if err := i.requireID(ActionCheckAccessors); err != nil {
		return false, err
	}
	params := map[string]any{"items": []int64{i.id}, "flags": true}
	var resp wialon.CheckAccessorsResponse
	if err := i.sess.Call(ctx, ActionCheckAccessors, params, &resp); err != nil {
		return false, err
	}
	entry, ok := resp[strconv.FormatInt(accessorID, 10)]
	return ok && entry.Current != 0, nil
}

// CustomFields fetches the current custom fields as a name→value map.
// Server-assigned field ids are dropped; use fetchFields when they matter.
func (i *Item) CustomFields(ctx context.Context) (map[string]string, error) {
	item, err := i.fetch(ctx, uint64(DataBase|DataCustomFields))
	if err != nil {
		return nil, err
	}
	return fieldValues(item.CustomFields), nil
}

// AdminFields fetches the current administrative fields as a name→value map.
func (i *Item) AdminFields(ctx context.Context) (map[string]string, error) {
	item, err := i.fetch(ctx, uint64(DataBase|DataAdminFields))
	if err != nil {
		return nil, err
	}
	return fieldValues(item.AdminFields), nil
}

// CustomProperties fetches the scalar key/value property store written
// by SetCustomProperty.
func (i *Item) CustomProperties(ctx context.Context) (map[string]string, error) {
	item, err := i.fetch(ctx, uint64(DataBase|DataCustomProps))
	if err != nil {
		return nil, err
	}
	return item.CustomProperties, nil
}

// Populate refreshes the cached class tag, name and unique id from a
// basic-fields fetch. The cache is only as fresh as the last call; no
// background refresh happens.
func (i *Item) Populate(ctx context.Context) error {
	item, err := i.fetch(ctx, uint64(DataBase))
	if err != nil {
		return err
	}
	i.name = item.Name
	i.class = item.Class
	i.uniqueID = item.UniqueID
	return nil
}

// fetch performs a single-item read with the given data flags.
func (i *Item) fetch(ctx context.Context, flags uint64) (*wialon.Item, error) {
	if err := i.requireID(ActionSearchItem); err != nil {
		return nil, err
	}
	req := wialon.SearchItemRequest{ID: i.id, Flags: flags}
	var resp wialon.ItemResponse
	if err := i.sess.Call(ctx, ActionSearchItem, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Item, nil
}

// fieldValues flattens a field map to name→value.
func fieldValues(fields map[string]wialon.Field) map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f.Name] = f.Value
	}
	return out
}
