// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package telematics

import (
	"context"
	"reflect"
	"testing"
)

func TestUnitCreateThenDelete(t *testing.T) {
	t.Parallel()

	s, ft := loggedInSession(t)
	ft.respond(ActionCreateUnit, `{"item":{"id":101,"nm":"u1","cls":"avl_unit"}}`)
	ft.respond(ActionDeleteItem, `{}`)
	u := NewUnit(s, 0)
	ctx := context.Background()

	recBefore := s.Recorder().Total()
	if err := u.Create(ctx, 27, "u1", 9); err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID() != 101 {
		t.Errorf("ID() = %d, want 101", u.ID())
	}

	var params struct {
		CreatorID int64  `json:"creatorId"`
		Name      string `json:"name"`
		HwTypeID  int64  `json:"hwTypeId"`
	}
	ft.lastParams(t, ActionCreateUnit, &params)
	if params.CreatorID != 27 || params.Name != "u1" || params.HwTypeID != 9 {
		t.Errorf("create params = %+v", params)
	}

	if err := u.Delete(ctx); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if u.ID() != 0 {
		t.Errorf("ID() = %d after delete, want 0", u.ID())
	}
	if got := s.Recorder().Total() - recBefore; got != 2 {
		t.Errorf("create+delete recorded %d calls, want 2", got)
	}
	if s.Recorder().Failures() != 0 {
		t.Errorf("recorder failures = %d, want 0", s.Recorder().Failures())
	}
}

func TestUnitCreateTwiceRejected(t *testing.T) {
	t.Parallel()

	s, ft := loggedInSession(t)
	ft.respond(ActionCreateUnit, `{"item":{"id":101,"nm":"u1"}}`)
	u := NewUnit(s, 0)
	ctx := context.Background()

	if err := u.Create(ctx, 27, "u1", 9); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := u.Create(ctx, 27, "u2", 9); err == nil {
		t.Error("second create succeeded")
	}
	if got := ft.count(ActionCreateUnit); got != 1 {
		t.Errorf("core_create_unit dispatched %d times, want 1", got)
	}
}

func TestUnitExecuteCommandDefaultsTimeout(t *testing.T) {
	t.Parallel()

	s, ft := loggedInSession(t)
	ft.respond(ActionExecCommand, `{}`)
	u := NewUnit(s, 101)

	if err := u.ExecuteCommand(context.Background(), "engine_stop", "tcp", 0, 0, ""); err != nil {
		t.Fatalf("execute: %v", err)
	}
	var params struct {
		ItemID   int64  `json:"itemId"`
		Command  string `json:"commandName"`
		LinkType string `json:"linkType"`
		Timeout  int    `json:"timeout"`
	}
	ft.lastParams(t, ActionExecCommand, &params)
	if params.ItemID != 101 || params.Command != "engine_stop" || params.LinkType != "tcp" {
		t.Errorf("params = %+v", params)
	}
	if params.Timeout != DefaultCommandTimeout {
		t.Errorf("timeout = %d, want %d", params.Timeout, DefaultCommandTimeout)
	}
}

func TestUnitActivationEncoding(t *testing.T) {
	t.Parallel()

	s, ft := loggedInSession(t)
	ft.respond(ActionSetActive, `{}`)
	u := NewUnit(s, 101)
	ctx := context.Background()

	var params struct {
		Active int `json:"activeFlag"`
	}
	if err := u.Activate(ctx); err != nil {
		t.Fatalf("activate: %v", err)
	}
	ft.lastParams(t, ActionSetActive, &params)
	if params.Active != 1 {
		t.Errorf("activeFlag = %d, want 1", params.Active)
	}

	if err := u.Deactivate(ctx); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	ft.lastParams(t, ActionSetActive, &params)
	if params.Active != 0 {
		t.Errorf("activeFlag = %d, want 0", params.Active)
	}
}

func TestUnitAssignPhoneEncodes(t *testing.T) {
	t.Parallel()

	s, ft := loggedInSession(t)
	ft.respond(ActionUpdatePhone, `{}`)
	u := NewUnit(s, 101)

	if err := u.AssignPhone(context.Background(), "+17135550123"); err != nil {
		t.Fatalf("assign phone: %v", err)
	}
	var params struct {
		Phone string `json:"phoneNumber"`
	}
	ft.lastParams(t, ActionUpdatePhone, &params)
	if params.Phone != "%2B17135550123" {
		t.Errorf("phoneNumber = %q, want url-encoded number", params.Phone)
	}
}

func TestUnitAvailableCommandsCached(t *testing.T) {
	t.Parallel()

	s, ft := loggedInSession(t)
	ft.respond(ActionHwCommands, `[{"id":1,"n":"Engine stop","c":"engine_stop","l":"tcp"}]`)
	u := NewUnit(s, 101)
	ctx := context.Background()

	cmds, err := u.AvailableCommands(ctx)
	if err != nil {
		t.Fatalf("commands: %v", err)
	}
	if len(cmds) != 1 || cmds[0].Command != "engine_stop" {
		t.Errorf("cmds = %+v", cmds)
	}

	if _, err := u.AvailableCommands(ctx); err != nil {
		t.Fatalf("cached commands: %v", err)
	}
	if got := ft.count(ActionHwCommands); got != 1 {
		t.Errorf("core_get_hw_cmds dispatched %d times, want 1", got)
	}
}

func TestUnitPhoneNumbersAggregation(t *testing.T) {
	t.Parallel()

	s, ft := loggedInSession(t)
	ft.respond(ActionUnitDrivers, `{"101":[{"id":1,"n":"d1","p":"+17131111111"},{"id":2,"n":"d2","p":"+17132222222"}]}`)
	ft.respond(ActionSearchItem, `{"item":{"id":101,"nm":"u1","cls":"avl_unit",`+
		`"flds":{"1":{"id":1,"n":"to_number","v":"+17132222222,+17133333333"}},`+
		`"aflds":{"5":{"id":5,"n":"to_number","v":"+17134444444"}}}}`)
	u := NewUnit(s, 101)

	phones, err := u.PhoneNumbers(context.Background(), "")
	if err != nil {
		t.Fatalf("phone numbers: %v", err)
	}
	want := []string{"+17131111111", "+17132222222", "+17133333333", "+17134444444"}
	if !reflect.DeepEqual(phones, want) {
		t.Errorf("phones = %v, want %v", phones, want)
	}
}

func TestUnitPhoneNumbersCustomKey(t *testing.T) {
	t.Parallel()

	s, ft := loggedInSession(t)
	ft.respond(ActionUnitDrivers, `{}`)
	ft.respond(ActionSearchItem, `{"item":{"id":101,"nm":"u1",`+
		`"flds":{"1":{"id":1,"n":"dispatch","v":"+15550001111"},"2":{"id":2,"n":"to_number","v":"+15559999999"}}}}`)
	u := NewUnit(s, 101)

	phones, err := u.PhoneNumbers(context.Background(), "dispatch")
	if err != nil {
		t.Fatalf("phone numbers: %v", err)
	}
	want := []string{"+15550001111"}
	if !reflect.DeepEqual(phones, want) {
		t.Errorf("phones = %v, want %v", phones, want)
	}
}

func TestDedupPhones(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"empty", nil, []string{}},
		{"splits commas", []string{"+1555, +1666"}, []string{"+1555", "+1666"}},
		{"dedup preserves order", []string{"+1666", "+1555,+1666", "+1555"}, []string{"+1666", "+1555"}},
		{"drops blanks", []string{",,", " "}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := dedupPhones(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("dedupPhones(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
