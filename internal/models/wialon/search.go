// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package wialon

// SearchSpec describes a core_search_items query. Property names and
// masks follow the remote API conventions ("sys_name", "*" wildcard).
type SearchSpec struct {
	ItemsType     string `json:"itemsType"`
	PropName      string `json:"propName"`
	PropValueMask string `json:"propValueMask"`
	SortType      string `json:"sortType"`
	PropType      string `json:"propType,omitempty"`
}

// SearchItemsRequest is the full core_search_items parameter object.
type SearchItemsRequest struct {
	Spec  SearchSpec `json:"spec"`
	Force int        `json:"force"`
	Flags uint64     `json:"flags"`
	From  int        `json:"from"`
	To    int        `json:"to"`
}

// SearchItemsResponse is the paged result of core_search_items.
type SearchItemsResponse struct {
	SearchSpec SearchSpec `json:"searchSpec"`
	DataFlags  uint64     `json:"dataFlags"`
	TotalItems int        `json:"totalItemsCount"`
	IndexFrom  int        `json:"indexFrom"`
	IndexTo    int        `json:"indexTo"`
	Items      []Item     `json:"items"`
}

// SearchItemRequest is the core_search_item parameter object.
type SearchItemRequest struct {
	ID    int64  `json:"id"`
	Flags uint64 `json:"flags"`
}
