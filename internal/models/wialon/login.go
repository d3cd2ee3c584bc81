// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package wialon

// LoginResponse is the payload returned by token_login.
//
// eid is the session id presented on every subsequent call. The gis_*
// URLs are auxiliary service endpoints scoped to the session; the
// hardware gateway address is exposed both as DNS name and raw IP.
type LoginResponse struct {
	EID             string    `json:"eid"`
	GisGeocode      string    `json:"gis_geocode"`
	GisRender       string    `json:"gis_render"`
	GisRouting      string    `json:"gis_routing"`
	GisSearch       string    `json:"gis_search"`
	GisSID          string    `json:"gis_sid"`
	VideoServiceURL string    `json:"video_service_url"`
	HwGwDNS         string    `json:"hw_gw_dns"`
	HwGwIP          string    `json:"hw_gw_ip"`
	WsdkVersion     string    `json:"wsdk_version"`
	ServerTime      int64     `json:"tm"`
	User            LoginUser `json:"user"`
}

// LoginUser identifies the effective user of the session.
type LoginUser struct {
	ID   int64  `json:"id"`
	Name string `json:"nm"`
}

// LogoutResponse is the payload returned by core_logout.
type LogoutResponse struct {
	Error int `json:"error"`
}
