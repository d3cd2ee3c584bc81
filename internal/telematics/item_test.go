// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package telematics

import (
	"context"
	"errors"
	"testing"
)

func TestItemMutationsRequireID(t *testing.T) {
	t.Parallel()

	s, ft := loggedInSession(t)
	u := NewUnit(s, 0)
	ctx := context.Background()

	tests := []struct {
		name string
		op   func() error
	}{
		{"rename", func() error { return u.Rename(ctx, "x") }},
		{"delete", func() error { return u.Delete(ctx) }},
		{"add custom field", func() error { _, err := u.AddCustomField(ctx, "k", "v"); return err }},
		{"add admin field", func() error { _, err := u.AddAdminField(ctx, "k", "v"); return err }},
		{"set custom property", func() error { return u.SetCustomProperty(ctx, "k", "v") }},
		{"set profile field", func() error { return u.SetProfileField(ctx, ProfileVIN, "v") }},
		{"populate", func() error { return u.Populate(ctx) }},
		{"execute command", func() error { return u.ExecuteCommand(ctx, "restart", "", 0, 0, "") }},
		{"assign phone", func() error { return u.AssignPhone(ctx, "+15550001111") }},
	}
	before := ft.total()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op()
			var invalid *InvalidArgumentError
			if !errors.As(err, &invalid) {
				t.Fatalf("error = %T (%v), want *InvalidArgumentError", err, err)
			}
		})
	}
	if got := ft.total(); got != before {
		t.Errorf("precondition failures issued %d RPCs, want 0", got-before)
	}
}

func TestItemRename(t *testing.T) {
	t.Parallel()

	s, ft := loggedInSession(t)
	ft.respond(ActionUpdateName, `{}`)
	u := NewUnit(s, 42)

	if err := u.Rename(context.Background(), "fleet-7"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if u.Name() != "fleet-7" {
		t.Errorf("Name() = %q, want fleet-7", u.Name())
	}
	var params struct {
		ItemID int64  `json:"itemId"`
		Name   string `json:"name"`
	}
	ft.lastParams(t, ActionUpdateName, &params)
	if params.ItemID != 42 || params.Name != "fleet-7" {
		t.Errorf("params = %+v", params)
	}
}

func TestItemDeleteClearsID(t *testing.T) {
	t.Parallel()

	s, ft := loggedInSession(t)
	ft.respond(ActionDeleteItem, `{}`)
	u := NewUnit(s, 42)

	if err := u.Delete(context.Background()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if u.ID() != 0 {
		t.Errorf("ID() = %d after delete, want 0", u.ID())
	}
	// A second delete must fail fast with no further RPC.
	before := ft.count(ActionDeleteItem)
	var invalid *InvalidArgumentError
	if err := u.Delete(context.Background()); !errors.As(err, &invalid) {
		t.Errorf("second delete error = %v, want *InvalidArgumentError", err)
	}
	if got := ft.count(ActionDeleteItem); got != before {
		t.Error("second delete issued an RPC")
	}
}

func TestItemFieldWriteModes(t *testing.T) {
	t.Parallel()

	s, ft := loggedInSession(t)
	ft.respond(ActionUpdateCustomField, `{"id":7,"f":{"id":7,"n":"to_number","v":"+15550001111"}}`)
	u := NewUnit(s, 42)
	ctx := context.Background()

	id, err := u.AddCustomField(ctx, "to_number", "+15550001111")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if id != 7 {
		t.Errorf("field id = %d, want 7", id)
	}
	var params struct {
		ID       int64  `json:"id"`
		CallMode string `json:"callMode"`
	}
	ft.lastParams(t, ActionUpdateCustomField, &params)
	if params.ID != 0 || params.CallMode != "create" {
		t.Errorf("create params = %+v", params)
	}

	if err := u.UpdateCustomField(ctx, 7, "to_number", "+15550002222"); err != nil {
		t.Fatalf("update: %v", err)
	}
	ft.lastParams(t, ActionUpdateCustomField, &params)
	if params.ID != 7 || params.CallMode != "update" {
		t.Errorf("update params = %+v", params)
	}

	// Update with id 0 is a create in disguise; reject it.
	var invalid *InvalidArgumentError
	if err := u.UpdateCustomField(ctx, 0, "k", "v"); !errors.As(err, &invalid) {
		t.Errorf("zero-id update error = %v, want *InvalidArgumentError", err)
	}
}

func TestItemSetProfileFieldRejectsUnknownName(t *testing.T) {
	t.Parallel()

	s, ft := loggedInSession(t)
	u := NewUnit(s, 42)

	before := ft.total()
	err := u.SetProfileField(context.Background(), ProfileField("odometer"), "1000")
	var invalid *InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %T (%v), want *InvalidArgumentError", err, err)
	}
	if got := ft.total(); got != before {
		t.Error("unknown profile field issued an RPC")
	}
}

func TestItemCustomFieldsMap(t *testing.T) {
	t.Parallel()

	s, ft := loggedInSession(t)
	ft.respond(ActionSearchItem, `{"item":{"id":42,"nm":"u1","cls":"avl_unit","flds":{"1":{"id":1,"n":"to_number","v":"+15550001111"},"2":{"id":2,"n":"vin","v":"1FTSW21"}}}}`)
	u := NewUnit(s, 42)

	fields, err := u.CustomFields(context.Background())
	if err != nil {
		t.Fatalf("custom fields: %v", err)
	}
	if len(fields) != 2 {
		t.Fatalf("len = %d, want 2", len(fields))
	}
	if fields["to_number"] != "+15550001111" || fields["vin"] != "1FTSW21" {
		t.Errorf("fields = %v", fields)
	}
}

func TestItemCustomPropertiesMap(t *testing.T) {
	t.Parallel()

	s, ft := loggedInSession(t)
	ft.respond(ActionSearchItem, `{"item":{"id":42,"nm":"u1","cls":"avl_unit","prp":{"phone":"+15550001111","email":"ops@example.invalid"}}}`)
	u := NewUnit(s, 42)

	props, err := u.CustomProperties(context.Background())
	if err != nil {
		t.Fatalf("custom properties: %v", err)
	}
	if props["phone"] != "+15550001111" || props["email"] != "ops@example.invalid" {
		t.Errorf("props = %v", props)
	}
	var params struct {
		Flags uint64 `json:"flags"`
	}
	ft.lastParams(t, ActionSearchItem, &params)
	if params.Flags != uint64(DataBase|DataCustomProps) {
		t.Errorf("flags = %#x, want %#x", params.Flags, uint64(DataBase|DataCustomProps))
	}
}

func TestItemPopulateRefreshesBasics(t *testing.T) {
	t.Parallel()

	s, ft := loggedInSession(t)
	ft.respond(ActionSearchItem, `{"item":{"id":42,"nm":"truck-9","cls":"avl_unit","uid":"353976013444444"}}`)
	u := NewUnit(s, 42)

	if err := u.Populate(context.Background()); err != nil {
		t.Fatalf("populate: %v", err)
	}
	if u.Name() != "truck-9" || u.Class() != "avl_unit" || u.UniqueID() != "353976013444444" {
		t.Errorf("populated = %q/%q/%q", u.Name(), u.Class(), u.UniqueID())
	}
}

func TestItemHasAccess(t *testing.T) {
	t.Parallel()

	s, ft := loggedInSession(t)
	ft.respond(ActionCheckAccessors, `{"31":{"curr":515,"comb":515}}`)
	u := NewUnit(s, 42)
	ctx := context.Background()

	ok, err := u.HasAccess(ctx, 31)
	if err != nil {
		t.Fatalf("has access: %v", err)
	}
	if !ok {
		t.Error("accessor 31 reported no access")
	}
	ok, err = u.HasAccess(ctx, 99)
	if err != nil {
		t.Fatalf("has access: %v", err)
	}
	if ok {
		t.Error("unknown accessor reported access")
	}
}
