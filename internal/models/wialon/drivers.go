// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package wialon

// Driver is a resource-scoped driver record. Phone carries the number
// used for unit phone aggregation.
type Driver struct {
	ID          int64  `json:"id"`
	Name        string `json:"n"`
	Phone       string `json:"p"`
	Description string `json:"ds,omitempty"`
	Code        string `json:"c,omitempty"`
}

// UnitDriversResponse maps a unit id (decimal string key) to the
// drivers currently attached to it, per resource_get_unit_drivers.
type UnitDriversResponse map[string][]Driver

// DriverBinding is one temporal driver-to-unit assignment interval.
type DriverBinding struct {
	UnitID   int64 `json:"u"`
	DriverID int64 `json:"d"`
	// Start and End are Unix epoch seconds.
	Start int64 `json:"t1"`
	End   int64 `json:"t2"`
}

// DriverBindingsRequest is the resource_get_driver_bindings parameter
// object. Zero UnitID or DriverID means no filter on that dimension.
type DriverBindingsRequest struct {
	ResourceID int64 `json:"resourceId"`
	TimeFrom   int64 `json:"timeFrom"`
	TimeTo     int64 `json:"timeTo"`
	UnitID     int64 `json:"unitId,omitempty"`
	DriverID   int64 `json:"driverId,omitempty"`
}

// DriverBindingsResponse lists binding intervals within the window.
type DriverBindingsResponse struct {
	Bindings []DriverBinding `json:"bindings"`
}
