// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package wialon

// Item is the generic domain object returned by item fetches and
// searches. Only the fields requested via data flags are populated.
type Item struct {
	ID   int64  `json:"id"`
	Name string `json:"nm"`
	// Class is the server-side class tag, e.g. "avl_unit", "avl_resource".
	Class string `json:"cls"`
	// UniqueID is the hardware-level identifier (units only).
	UniqueID string `json:"uid,omitempty"`
	// Phone is the SIM phone number bound to the device (units only).
	Phone string `json:"ph,omitempty"`
	// HardwareTypeID identifies the device family (units only).
	HardwareTypeID int64 `json:"hw,omitempty"`
	// BillingAccountID is the owning account id (resources). A resource
	// whose BillingAccountID equals its own ID has been promoted to an
	// account.
	BillingAccountID int64 `json:"bact,omitempty"`
	// CustomFields is keyed by the server-assigned field id.
	CustomFields map[string]Field `json:"flds,omitempty"`
	// AdminFields is keyed by the server-assigned field id.
	AdminFields map[string]Field `json:"aflds,omitempty"`
	// CustomProperties is the scalar key/value property store.
	CustomProperties map[string]string `json:"prp,omitempty"`
	// MemberIDs lists contained unit ids (unit groups only).
	MemberIDs []int64 `json:"u,omitempty"`
	// UserFlags carries the user settings bitfield (users only).
	UserFlags uint64 `json:"fl,omitempty"`
}

// Field is a single custom or administrative field entry.
type Field struct {
	ID    int64  `json:"id"`
	Name  string `json:"n"`
	Value string `json:"v"`
}

// ItemResponse wraps a single-item fetch (core_search_item) or a create
// action; the new object's id is found at item.id.
type ItemResponse struct {
	Item  Item   `json:"item"`
	Flags uint64 `json:"flags,omitempty"`
}

// FieldResponse is returned by custom/admin field writes: the server
// echoes the stored field with its assigned id.
type FieldResponse struct {
	ID    int64 `json:"id"`
	Field Field `json:"f"`
}
