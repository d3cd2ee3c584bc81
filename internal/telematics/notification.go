// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package telematics

import "context"

// NotificationOptions are the optional knobs of a notification. Zero
// values fall back to server defaults.
type NotificationOptions struct {
	// Text is the message template delivered on trigger.
	Text string
	// MaxAlarms is the trigger budget; 0 means unlimited.
	MaxAlarms int
	// Interval is the minimal delay between triggers, seconds.
	Interval int
	// Language is a two-letter locale code, e.g. "en".
	Language string
}

// Notification is the facade for a resource-scoped notification.
type Notification struct {
	Item

	resourceID int64
}

// NewNotification returns a notification facade bound to its owning
// resource. id 0 means not yet created.
func NewNotification(sess *Session, resourceID, id int64) *Notification {
	return &Notification{Item: newItem(sess, TypeNotification, id), resourceID: resourceID}
}

// ResourceID returns the owning resource's id.
func (n *Notification) ResourceID() int64 { return n.resourceID }

// Create registers a new notification active between activation and
// deactivation (epoch seconds) and binds the returned id.
func (n *Notification) Create(ctx context.Context, name string, activation, deactivation int64, opts NotificationOptions) error {
	if n.id != 0 {
		return invalidArg(ActionUpdateNotification, "notification already has id %d", n.id)
	}
	if n.resourceID == 0 {
		return invalidArg(ActionUpdateNotification, "owning resource id must be non-zero")
	}
	if name == "" {
		return invalidArg(ActionUpdateNotification, "name must not be empty")
	}
	if deactivation != 0 && deactivation < activation {
		return invalidArg(ActionUpdateNotification, "deactivation %d precedes activation %d", deactivation, activation)
	}
	params := map[string]any{
		"itemId":   n.resourceID,
		"id":       0,
		"callMode": "create",
		"n":        name,
		"txt":      opts.Text,
		"ta":       activation,
		"td":       deactivation,
		"ma":       opts.MaxAlarms,
		"cdt":      opts.Interval,
		"la":       opts.Language,
	}
	id, err := createScopedEntity(ctx, n.sess, ActionUpdateNotification, params)
	if err != nil {
		return err
	}
	n.setID(id)
	n.name = name
	return nil
}
