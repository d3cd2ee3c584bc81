// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package wialon

// MessagesLayerRequest is the render_create_messages_layer parameter
// object. TimeFrom/TimeTo bound the message window in epoch seconds.
type MessagesLayerRequest struct {
	LayerName  string `json:"layerName"`
	ItemID     int64  `json:"itemId"`
	TimeFrom   int64  `json:"timeFrom"`
	TimeTo     int64  `json:"timeTo"`
	TripDetect int    `json:"tripDetector"`
	TrackColor string `json:"trackColor"`
	TrackWidth int    `json:"trackWidth"`
	Arrows     int    `json:"arrows"`
	Points     int    `json:"points"`
	PointColor string `json:"pointColor"`
	Annotation int    `json:"annotations"`
	Flags      uint64 `json:"flags"`
}

// LayerInfo describes a created rendering layer.
type LayerInfo struct {
	Name   string    `json:"name"`
	Bounds []float64 `json:"bounds,omitempty"`
	// Units lists per-unit summaries for message-track layers.
	Units []LayerUnitInfo `json:"units,omitempty"`
}

// LayerUnitInfo summarises one unit's track within a layer.
type LayerUnitInfo struct {
	ID       int64 `json:"id"`
	Messages int   `json:"msgs"`
	// First and Last are epoch seconds of the window actually covered.
	First int64 `json:"first"`
	Last  int64 `json:"last"`
}

// SetLocaleRequest is the render_set_locale parameter object.
// Flags selects the measurement system; Density picks the tile density
// band (1..5).
type SetLocaleRequest struct {
	TimeZone   int    `json:"tzOffset"`
	Language   string `json:"language"`
	Flags      uint64 `json:"flags"`
	DateFormat string `json:"formatDate"`
	Density    int    `json:"density"`
}
