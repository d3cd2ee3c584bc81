// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package telematics

import (
	"context"

	"github.com/terminusgps/terminusgps-go/internal/models/wialon"
)

// Resource is the facade for a container owning notifications,
// geofences and drivers. A resource promoted via CreateAccount also
// acts as a billing account; the account-only operations fail
// server-side on an unpromoted resource.
type Resource struct {
	Item
}

// NewResource returns a resource facade. id 0 means not yet created.
func NewResource(sess *Session, id int64) *Resource {
	return &Resource{Item: newItem(sess, TypeResource, id)}
}

// Create registers a new resource owned by creatorID. skipCreatorCheck
// relaxes the server's requirement that the creator can own resources.
func (r *Resource) Create(ctx context.Context, creatorID int64, name string, skipCreatorCheck bool) error {
	if r.id != 0 {
		return invalidArg(ActionCreateResource, "resource already has id %d", r.id)
	}
	if creatorID == 0 {
		return invalidArg(ActionCreateResource, "creator id must be non-zero")
	}
	if name == "" {
		return invalidArg(ActionCreateResource, "name must not be empty")
	}
	params := map[string]any{
		"creatorId":        creatorID,
		"name":             name,
		"dataFlags":        uint64(DataBase),
		"skipCreatorCheck": boolToInt(skipCreatorCheck),
	}
	var resp wialon.ItemResponse
	if err := r.sess.Call(ctx, ActionCreateResource, params, &resp); err != nil {
		return err
	}
	r.setID(resp.Item.ID)
	r.name = resp.Item.Name
	return nil
}

// CreateAccount promotes the resource to a billing account on the
// given plan.
func (r *Resource) CreateAccount(ctx context.Context, plan string) error {
	if err := r.requireID(ActionCreateAccount); err != nil {
		return err
	}
	if plan == "" {
		return invalidArg(ActionCreateAccount, "plan must not be empty")
	}
	params := map[string]any{"itemId": r.id, "plan": plan}
	return r.sess.Call(ctx, ActionCreateAccount, params, nil)
}

// IsAccount reports whether the resource has been promoted: a resource
// whose billing account id equals its own id is an account.
func (r *Resource) IsAccount(ctx context.Context) (bool, error) {
	item, err := r.fetch(ctx, uint64(DataBase|DataBilling))
	if err != nil {
		return false, err
	}
	return item.BillingAccountID == r.id, nil
}

// NotificationData fetches this resource's notifications. With no ids
// the full set is returned; otherwise only the named ones.
func (r *Resource) NotificationData(ctx context.Context, ids ...int64) ([]wialon.Notification, error) {
	if err := r.requireID(ActionNotificationData); err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []int64{}
	}
	params := map[string]any{"itemId": r.id, "col": ids}
	var resp wialon.NotificationDataResponse
	if err := r.sess.Call(ctx, ActionNotificationData, params, &resp); err != nil {
		return nil, err
	}
	return resp.Notifications, nil
}

// DriverBindings lists driver-to-unit assignment intervals within the
// window [start, stop] (epoch seconds). Zero unitID or driverID means
// no filter on that dimension.
func (r *Resource) DriverBindings(ctx context.Context, start, stop int64, unitID, driverID int64) ([]wialon.DriverBinding, error) {
	if err := r.requireID(ActionDriverBindings); err != nil {
		return nil, err
	}
	if stop < start {
		return nil, invalidArg(ActionDriverBindings, "window end %d precedes start %d", stop, start)
	}
	req := wialon.DriverBindingsRequest{
		ResourceID: r.id,
		TimeFrom:   start,
		TimeTo:     stop,
		UnitID:     unitID,
		DriverID:   driverID,
	}
	var resp wialon.DriverBindingsResponse
	if err := r.sess.Call(ctx, ActionDriverBindings, req, &resp); err != nil {
		return nil, err
	}
	return resp.Bindings, nil
}

// SetSettingsFlags writes the account behavior flags. Account only.
func (r *Resource) SetSettingsFlags(ctx context.Context, flags SettingsFlags) error {
	if err := r.requireID(ActionAccountFlags); err != nil {
		return err
	}
	params := map[string]any{"itemId": r.id, "flags": uint64(flags)}
	return r.sess.Call(ctx, ActionAccountFlags, params, nil)
}

// SetMinimumDays sets the account's minimum prepaid-days threshold.
// Account only.
func (r *Resource) SetMinimumDays(ctx context.Context, days int) error {
	if err := r.requireID(ActionMinimumDays); err != nil {
		return err
	}
	if days < 0 {
		return invalidArg(ActionMinimumDays, "days must not be negative, got %d", days)
	}
	params := map[string]any{"itemId": r.id, "minDays": days}
	return r.sess.Call(ctx, ActionMinimumDays, params, nil)
}

// AddDays credits prepaid days to the account balance. Account only.
func (r *Resource) AddDays(ctx context.Context, days int, description string) error {
	if err := r.requireID(ActionDoPayment); err != nil {
		return err
	}
	if days <= 0 {
		return invalidArg(ActionDoPayment, "days must be positive, got %d", days)
	}
	params := map[string]any{
		"itemId":        r.id,
		"daysUpdate":    days,
		"balanceUpdate": 0,
		"description":   description,
	}
	return r.sess.Call(ctx, ActionDoPayment, params, nil)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
