// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package telematics

import (
	"context"
	"sort"
	"strconv"

	"github.com/terminusgps/terminusgps-go/internal/models/wialon"
)

// Identifiable is anything holding a server-side id; every facade
// satisfies it through the embedded Item.
type Identifiable interface {
	ID() int64
}

// User is the facade for an account user.
type User struct {
	Item
}

// NewUser returns a user facade. id 0 means not yet created.
func NewUser(sess *Session, id int64) *User {
	return &User{Item: newItem(sess, TypeUser, id)}
}

// Create registers a new user under ownerID and binds the returned id.
func (u *User) Create(ctx context.Context, ownerID int64, name, password string) error {
	if u.id != 0 {
		return invalidArg(ActionCreateUser, "user already has id %d", u.id)
	}
	if ownerID == 0 {
		return invalidArg(ActionCreateUser, "owner id must be non-zero")
	}
	if name == "" {
		return invalidArg(ActionCreateUser, "name must not be empty")
	}
	if password == "" {
		return invalidArg(ActionCreateUser, "password must not be empty")
	}
	params := map[string]any{
		"creatorId": ownerID,
		"name":      name,
		"password":  password,
		"dataFlags": uint64(DataBase),
	}
	var resp wialon.ItemResponse
	if err := u.sess.Call(ctx, ActionCreateUser, params, &resp); err != nil {
		return err
	}
	u.setID(resp.Item.ID)
	u.name = resp.Item.Name
	return nil
}

// GrantAccess gives this user the mask's rights on item. A zero mask
// falls back to AccessUnitBasic.
func (u *User) GrantAccess(ctx context.Context, item Identifiable, mask AccessFlags) error {
	if err := u.requireID(ActionUpdateItemAccess); err != nil {
		return err
	}
	if item.ID() == 0 {
		return invalidArg(ActionUpdateItemAccess, "target item has no id")
	}
	if mask == 0 {
		mask = AccessUnitBasic
	}
	params := map[string]any{
		"userId":     u.id,
		"itemId":     item.ID(),
		"accessMask": uint64(mask),
	}
	return u.sess.Call(ctx, ActionUpdateItemAccess, params, nil)
}

// RevokeAccess removes every right this user holds on item.
func (u *User) RevokeAccess(ctx context.Context, item Identifiable) error {
	if err := u.requireID(ActionUpdateItemAccess); err != nil {
		return err
	}
	if item.ID() == 0 {
		return invalidArg(ActionUpdateItemAccess, "target item has no id")
	}
	params := map[string]any{
		"userId":     u.id,
		"itemId":     item.ID(),
		"accessMask": 0,
	}
	return u.sess.Call(ctx, ActionUpdateItemAccess, params, nil)
}

// SetSettingsFlags writes the bits of flags selected by mask; bits
// outside the mask keep their server-side value.
func (u *User) SetSettingsFlags(ctx context.Context, flags, mask SettingsFlags) error {
	if err := u.requireID(ActionUpdateUserFlags); err != nil {
		return err
	}
	if mask == 0 {
		return invalidArg(ActionUpdateUserFlags, "flags mask must be non-zero")
	}
	params := map[string]any{
		"userId":    u.id,
		"flags":     uint64(flags),
		"flagsMask": uint64(mask),
	}
	return u.sess.Call(ctx, ActionUpdateUserFlags, params, nil)
}

// SettingsFlags reads back the user's current settings bitfield.
func (u *User) SettingsFlags(ctx context.Context) (SettingsFlags, error) {
	item, err := u.fetch(ctx, uint64(DataBase))
	if err != nil {
		return 0, err
	}
	return SettingsFlags(item.UserFlags), nil
}

// UpdatePassword rotates the user's password.
func (u *User) UpdatePassword(ctx context.Context, oldPassword, newPassword string) error {
	if err := u.requireID(ActionUpdatePassword); err != nil {
		return err
	}
	if newPassword == "" {
		return invalidArg(ActionUpdatePassword, "new password must not be empty")
	}
	params := map[string]any{
		"userId":      u.id,
		"oldPassword": oldPassword,
		"newPassword": newPassword,
	}
	return u.sess.Call(ctx, ActionUpdatePassword, params, nil)
}

// AssignPhone stores the contact phone as a custom property.
func (u *User) AssignPhone(ctx context.Context, phone string) error {
	if phone == "" {
		return invalidArg(ActionUpdateCustomProperty, "phone must not be empty")
	}
	return u.SetCustomProperty(ctx, "phone", phone)
}

// AssignEmail stores the contact email as a custom property.
func (u *User) AssignEmail(ctx context.Context, email string) error {
	if email == "" {
		return invalidArg(ActionUpdateCustomProperty, "email must not be empty")
	}
	return u.SetCustomProperty(ctx, "email", email)
}

// Units lists the ids of units this user can access, ascending.
func (u *User) Units(ctx context.Context) ([]int64, error) {
	return u.accessibleItems(ctx, TypeUnit.Class())
}

// Groups lists the ids of unit groups this user can access, ascending.
func (u *User) Groups(ctx context.Context) ([]int64, error) {
	return u.accessibleItems(ctx, TypeUnitGroup.Class())
}

// accessibleItems queries the access table filtered by item superclass.
func (u *User) accessibleItems(ctx context.Context, superclass string) ([]int64, error) {
	if err := u.requireID(ActionItemsAccess); err != nil {
		return nil, err
	}
	params := map[string]any{
		"userId":         u.id,
		"directAccess":   true,
		"itemSuperclass": superclass,
		"flags":          uint64(DataBase),
	}
	var resp wialon.ItemsAccessResponse
	if err := u.sess.Call(ctx, ActionItemsAccess, params, &resp); err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(resp))
	for key, entry := range resp {
		if entry.Current == 0 {
			continue
		}
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
