// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package telematics

import "testing"

func TestAccessCompositeSums(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  AccessFlags
		want AccessFlags
	}{
		{"unit basic", AccessUnitBasic, 0x333},
		{"unit migration", AccessUnitMigration, 0x3003ff},
		{"resource basic", AccessResourceBasic, 0x73},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.got != tt.want {
				t.Errorf("composite = %#x, want %#x", uint64(tt.got), uint64(tt.want))
			}
		})
	}
}

func TestDefaultLoginFlags(t *testing.T) {
	t.Parallel()

	if DefaultLoginFlags != LoginView|LoginManage|LoginCommunication {
		t.Errorf("DefaultLoginFlags = %#x", uint64(DefaultLoginFlags))
	}
	if DefaultLoginFlags != 0x26 {
		t.Errorf("DefaultLoginFlags sum = %#x, want 0x26", uint64(DefaultLoginFlags))
	}
}

func TestItemTypeClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  ItemType
		want string
	}{
		{TypeUnit, "avl_unit"},
		{TypeUnitGroup, "avl_unit_group"},
		{TypeResource, "avl_resource"},
		{TypeAccount, "avl_resource"},
		{TypeUser, "user"},
		{TypeRoute, "avl_route"},
		{TypeRetranslator, "avl_retranslator"},
		{TypeGeofence, "avl_resource_zone"},
		{TypeNotification, "avl_resource_notification"},
		{TypeHardware, "avl_hw"},
	}
	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			t.Parallel()
			if got := tt.tag.Class(); got != tt.want {
				t.Errorf("Class() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProfileFieldValid(t *testing.T) {
	t.Parallel()

	for _, f := range []ProfileField{ProfileVIN, ProfileBrand, ProfileAxles, ProfileVehicleType} {
		if !f.Valid() {
			t.Errorf("%q reported invalid", string(f))
		}
	}
	for _, f := range []ProfileField{"", "vin2", "serial", "VIN"} {
		if f.Valid() {
			t.Errorf("%q reported valid", string(f))
		}
	}
}
