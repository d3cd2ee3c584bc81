// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package wialon

// AccessEntry describes the rights one accessor holds on one item.
type AccessEntry struct {
	// Current is the effective access bitmask.
	Current uint64 `json:"curr"`
	// Combined includes rights inherited through the hierarchy.
	Combined uint64 `json:"comb,omitempty"`
}

// CheckAccessorsResponse maps accessor id (decimal string key) to the
// rights held on the queried item, per core_check_accessors.
type CheckAccessorsResponse map[string]AccessEntry

// ItemsAccessResponse maps item id (decimal string key) to the rights
// the queried user holds on it, per user_get_items_access.
type ItemsAccessResponse map[string]AccessEntry
