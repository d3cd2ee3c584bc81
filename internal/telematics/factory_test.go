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

func TestFactoryCreateUnit(t *testing.T) {
	t.Parallel()

	s, ft := loggedInSession(t)
	ft.respond(ActionCreateUnit, `{"item":{"id":101,"nm":"u1","cls":"avl_unit"}}`)

	f, err := Create(context.Background(), s, TypeUnit, CreateParams{CreatorID: 27, Name: "u1", HardwareTypeID: 9})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if f.ID() != 101 {
		t.Errorf("ID() = %d, want 101", f.ID())
	}
	if f.Kind() != TypeUnit {
		t.Errorf("Kind() = %q, want %q", f.Kind(), TypeUnit)
	}
	if _, ok := f.(*Unit); !ok {
		t.Errorf("facade type = %T, want *Unit", f)
	}
}

func TestFactoryRejectsBadTags(t *testing.T) {
	t.Parallel()

	s, ft := loggedInSession(t)
	ctx := context.Background()
	before := ft.total()

	_, err := Create(ctx, s, TypeHardware, CreateParams{CreatorID: 27, Name: "x"})
	if !errors.Is(err, ErrNotImplementedKind) {
		t.Errorf("avl_hw error = %v, want ErrNotImplementedKind", err)
	}

	_, err = Create(ctx, s, ItemType("bogus"), CreateParams{CreatorID: 27, Name: "x"})
	if !errors.Is(err, ErrUnknownTag) {
		t.Errorf("bogus error = %v, want ErrUnknownTag", err)
	}

	if _, err := Get(s, TypeHardware, 5); !errors.Is(err, ErrNotImplementedKind) {
		t.Errorf("Get avl_hw error = %v, want ErrNotImplementedKind", err)
	}
	if _, err := Get(s, ItemType("bogus"), 5); !errors.Is(err, ErrUnknownTag) {
		t.Errorf("Get bogus error = %v, want ErrUnknownTag", err)
	}

	if got := ft.total(); got != before {
		t.Errorf("tag rejection issued %d RPCs, want 0", got-before)
	}
}

func TestFactoryWrapsCreateFailures(t *testing.T) {
	t.Parallel()

	s, ft := loggedInSession(t)
	ft.fail(ActionCreateUnit, "E00022", "billing limit reached")

	_, err := Create(context.Background(), s, TypeUnit, CreateParams{CreatorID: 27, Name: "u1", HardwareTypeID: 9})
	var creationErr *CreationError
	if !errors.As(err, &creationErr) {
		t.Fatalf("error = %T (%v), want *CreationError", err, err)
	}
	var callErr *CallError
	if !errors.As(err, &callErr) || callErr.Code != "E00022" {
		t.Errorf("chained cause = %v, want CallError E00022", err)
	}
}

func TestFactoryCreateVerifiesID(t *testing.T) {
	t.Parallel()

	s, ft := loggedInSession(t)
	// Server accepts the create but hands back no id.
	ft.respond(ActionCreateUnit, `{"item":{"nm":"u1"}}`)

	_, err := Create(context.Background(), s, TypeUnit, CreateParams{CreatorID: 27, Name: "u1", HardwareTypeID: 9})
	var creationErr *CreationError
	if !errors.As(err, &creationErr) {
		t.Fatalf("error = %T (%v), want *CreationError", err, err)
	}
}

func TestFactoryGetIssuesNoRPC(t *testing.T) {
	t.Parallel()

	s, ft := loggedInSession(t)
	before := ft.total()

	tests := []struct {
		tag  ItemType
		want ItemType
	}{
		{TypeUnit, TypeUnit},
		{TypeUnitGroup, TypeUnitGroup},
		{TypeUser, TypeUser},
		{TypeResource, TypeResource},
		{TypeAccount, TypeResource},
		{TypeRoute, TypeRoute},
		{TypeRetranslator, TypeRetranslator},
		{TypeGeofence, TypeGeofence},
		{TypeNotification, TypeNotification},
	}
	for _, tt := range tests {
		f, err := Get(s, tt.tag, 5)
		if err != nil {
			t.Fatalf("Get(%q): %v", tt.tag, err)
		}
		if f.ID() != 5 {
			t.Errorf("Get(%q).ID() = %d, want 5", tt.tag, f.ID())
		}
		if f.Kind() != tt.want {
			t.Errorf("Get(%q).Kind() = %q, want %q", tt.tag, f.Kind(), tt.want)
		}
	}
	if got := ft.total(); got != before {
		t.Errorf("Get issued %d RPCs, want 0", got-before)
	}
}

func TestGetByStringID(t *testing.T) {
	t.Parallel()

	s, _ := loggedInSession(t)

	f, err := GetByStringID(s, TypeUnit, "101")
	if err != nil {
		t.Fatalf("GetByStringID: %v", err)
	}
	if f.ID() != 101 {
		t.Errorf("ID() = %d, want 101", f.ID())
	}

	var invalid *InvalidArgumentError
	for _, bad := range []string{"", "12a", "-5", "1.5", "0x10"} {
		if _, err := GetByStringID(s, TypeUnit, bad); !errors.As(err, &invalid) {
			t.Errorf("GetByStringID(%q) error = %v, want *InvalidArgumentError", bad, err)
		}
	}
}

func TestParseID(t *testing.T) {
	t.Parallel()

	got, err := ParseID("123456789")
	if err != nil {
		t.Fatalf("ParseID: %v", err)
	}
	if got != 123456789 {
		t.Errorf("ParseID = %d, want 123456789", got)
	}
	if _, err := ParseID("99999999999999999999"); err == nil {
		t.Error("overflowing id accepted")
	}
}
