// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package telematics

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/terminusgps/terminusgps-go/internal/models/wialon"
)

// DefaultCommandTimeout is the server-side execution timeout (seconds)
// used when ExecuteCommand is given zero.
const DefaultCommandTimeout = 5

// DefaultPhoneFieldKey is the custom/admin field name scanned by
// PhoneNumbers when no key is supplied.
const DefaultPhoneFieldKey = "to_number"

// Unit is the facade for a tracked device/vehicle.
type Unit struct {
	Item

	// cmds caches the hardware command list after the first fetch.
	cmds []wialon.HardwareCommand
}

// NewUnit returns a unit facade. id 0 means not yet created.
func NewUnit(sess *Session, id int64) *Unit {
	return &Unit{Item: newItem(sess, TypeUnit, id)}
}

// Create registers a new unit owned by creatorID with the given
// hardware type and binds the returned id.
func (u *Unit) Create(ctx context.Context, creatorID int64, name string, hwTypeID int64) error {
	if u.id != 0 {
		return invalidArg(ActionCreateUnit, "unit already has id %d", u.id)
	}
	if creatorID == 0 {
		return invalidArg(ActionCreateUnit, "creator id must be non-zero")
	}
	if name == "" {
		return invalidArg(ActionCreateUnit, "name must not be empty")
	}
	params := map[string]any{
		"creatorId": creatorID,
		"name":      name,
		"hwTypeId":  hwTypeID,
		"dataFlags": uint64(DataBase),
	}
	var resp wialon.ItemResponse
	if err := u.sess.Call(ctx, ActionCreateUnit, params, &resp); err != nil {
		return err
	}
	u.setID(resp.Item.ID)
	u.name = resp.Item.Name
	return nil
}

// ExecuteCommand dispatches a hardware command to the device. linkType
// selects the delivery channel ("" lets the server pick); timeout is in
// seconds, 0 meaning DefaultCommandTimeout. Success carries no payload.
func (u *Unit) ExecuteCommand(ctx context.Context, name, linkType string, timeout int, flags uint64, param string) error {
	if err := u.requireID(ActionExecCommand); err != nil {
		return err
	}
	if name == "" {
		return invalidArg(ActionExecCommand, "command name must not be empty")
	}
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	req := wialon.ExecCommandRequest{
		ItemID:   u.id,
		Command:  name,
		LinkType: linkType,
		Param:    param,
		Timeout:  timeout,
		Flags:    flags,
	}
	return u.sess.Call(ctx, ActionExecCommand, req, nil)
}

// SetAccessPassword changes the device access password.
func (u *Unit) SetAccessPassword(ctx context.Context, password string) error {
	if err := u.requireID(ActionUpdateAccessPassword); err != nil {
		return err
	}
	params := map[string]any{"itemId": u.id, "accessPassword": password}
	return u.sess.Call(ctx, ActionUpdateAccessPassword, params, nil)
}

// Activate enables tracking for the unit.
func (u *Unit) Activate(ctx context.Context) error { return u.setActive(ctx, 1) }

// Deactivate disables tracking for the unit.
func (u *Unit) Deactivate(ctx context.Context) error { return u.setActive(ctx, 0) }

func (u *Unit) setActive(ctx context.Context, active int) error {
	if err := u.requireID(ActionSetActive); err != nil {
		return err
	}
	params := map[string]any{"itemId": u.id, "activeFlag": active}
	return u.sess.Call(ctx, ActionSetActive, params, nil)
}

// AssignPhone binds a SIM phone number to the device. The number is
// url-encoded on the wire, so "+" survives the form transport.
func (u *Unit) AssignPhone(ctx context.Context, phone string) error {
	if err := u.requireID(ActionUpdatePhone); err != nil {
		return err
	}
	if phone == "" {
		return invalidArg(ActionUpdatePhone, "phone must not be empty")
	}
	params := map[string]any{"itemId": u.id, "phoneNumber": url.QueryEscape(phone)}
	return u.sess.Call(ctx, ActionUpdatePhone, params, nil)
}

// AvailableCommands returns the commands supported by the unit's device
// family. The list is fetched once per facade and cached.
func (u *Unit) AvailableCommands(ctx context.Context) ([]wialon.HardwareCommand, error) {
	if u.cmds != nil {
		return u.cmds, nil
	}
	if err := u.requireID(ActionHwCommands); err != nil {
		return nil, err
	}
	params := map[string]any{"itemId": u.id}
	var cmds []wialon.HardwareCommand
	if err := u.sess.Call(ctx, ActionHwCommands, params, &cmds); err != nil {
		return nil, err
	}
	u.cmds = cmds
	return cmds, nil
}

// PhoneNumbers aggregates every phone number reachable for this unit:
// phones of attached drivers, then custom fields named key, then admin
// fields named key. Comma-separated values in one field are split.
// Duplicates are removed preserving first-seen order. An empty key
// falls back to DefaultPhoneFieldKey.
func (u *Unit) PhoneNumbers(ctx context.Context, key string) ([]string, error) {
	if err := u.requireID(ActionUnitDrivers); err != nil {
		return nil, err
	}
	if key == "" {
		key = DefaultPhoneFieldKey
	}

	params := map[string]any{"unitId": u.id}
	var drivers wialon.UnitDriversResponse
	if err := u.sess.Call(ctx, ActionUnitDrivers, params, &drivers); err != nil {
		return nil, err
	}

	item, err := u.fetch(ctx, uint64(DataBase|DataCustomFields|DataAdminFields))
	if err != nil {
		return nil, err
	}

	var raw []string
	for _, d := range drivers[strconv.FormatInt(u.id, 10)] {
		raw = append(raw, d.Phone)
	}
	raw = append(raw, fieldsMatching(item.CustomFields, key)...)
	raw = append(raw, fieldsMatching(item.AdminFields, key)...)
	return dedupPhones(raw), nil
}

// fieldsMatching collects the values of fields named key, in ascending
// field-id order so aggregation stays deterministic.
func fieldsMatching(fields map[string]wialon.Field, key string) []string {
	matched := make([]wialon.Field, 0, len(fields))
	for _, f := range fields {
		if f.Name == key {
			matched = append(matched, f)
		}
	}
	for i := 1; i < len(matched); i++ {
		for j := i; j > 0 && matched[j-1].ID > matched[j].ID; j-- {
			matched[j-1], matched[j] = matched[j], matched[j-1]
		}
	}
	values := make([]string, 0, len(matched))
	for _, f := range matched {
		values = append(values, f.Value)
	}
	return values
}

// dedupPhones splits comma-separated entries and removes duplicates
// preserving first-seen order.
func dedupPhones(raw []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		for _, phone := range strings.Split(entry, ",") {
			phone = strings.TrimSpace(phone)
			if phone == "" {
				continue
			}
			if _, dup := seen[phone]; dup {
				continue
			}
			seen[phone] = struct{}{}
			out = append(out, phone)
		}
	}
	return out
}
