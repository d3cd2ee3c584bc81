// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package wialon

// HardwareCommand describes one command supported by a unit's device
// family, as returned by core_get_hw_cmds.
type HardwareCommand struct {
	ID       int64  `json:"id"`
	Name     string `json:"n"`
	Command  string `json:"c"`
	LinkType string `json:"l"`
	// Params is the free-form parameter template, device specific.
	Params string `json:"p,omitempty"`
}

// ExecCommandRequest is the unit_exec_cmd parameter object.
// Timeout is in seconds; LinkType selects the delivery channel
// (empty string lets the server pick).
type ExecCommandRequest struct {
	ItemID   int64  `json:"itemId"`
	Command  string `json:"commandName"`
	LinkType string `json:"linkType"`
	Param    string `json:"param"`
	Timeout  int    `json:"timeout"`
	Flags    uint64 `json:"flags"`
}
