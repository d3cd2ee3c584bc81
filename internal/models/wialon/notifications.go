// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package wialon

// Notification is a resource-scoped notification record as returned by
// resource_get_notification_data.
type Notification struct {
	ID int64 `json:"id"`
	// Name is the display name.
	Name string `json:"n"`
	// Text is the message template delivered on trigger.
	Text string `json:"txt,omitempty"`
	// ActivationTime and DeactivationTime are Unix epoch seconds.
	ActivationTime   int64 `json:"ta"`
	DeactivationTime int64 `json:"td"`
	// MaxAlarms is the trigger budget (0 = unlimited).
	MaxAlarms int `json:"ma"`
	// Interval is the minimal delay between triggers, seconds.
	Interval int `json:"cdt"`
	// Language is a two-letter locale code.
	Language string `json:"la,omitempty"`
	// UnitIDs lists the units the notification watches.
	UnitIDs []int64 `json:"un,omitempty"`
}

// NotificationDataResponse is returned by resource_get_notification_data.
type NotificationDataResponse struct {
	Notifications []Notification `json:"notifications"`
}
