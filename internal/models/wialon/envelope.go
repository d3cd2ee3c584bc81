// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package wialon

import "strings"

// ResultCodeOk is the resultCode value of a successful response.
const ResultCodeOk = "Ok"

// Envelope is the status wrapper carried by every API response.
// The transport probes for it before handing the payload to callers.
type Envelope struct {
	Messages *Messages `json:"messages,omitempty"`
}

// Messages holds the server result code and any diagnostic messages.
type Messages struct {
	ResultCode string    `json:"resultCode"`
	Message    []Message `json:"message,omitempty"`
}

// Message is a single server diagnostic with a vendor error code.
type Message struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

// Ok reports whether the response was accepted by the server.
// A missing envelope counts as success: several read endpoints return
// bare payloads without a messages block.
func (m *Messages) Ok() bool {
	return m == nil || m.ResultCode == ResultCodeOk
}

// FirstCode returns the code of the first diagnostic message, or the
// result code itself when the server sent no message list.
func (m *Messages) FirstCode() string {
	if m == nil {
		return ""
	}
	if len(m.Message) > 0 {
		return m.Message[0].Code
	}
	return m.ResultCode
}

// Text joins all diagnostic message texts for error reporting.
func (m *Messages) Text() string {
	if m == nil || len(m.Message) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m.Message))
	for _, msg := range m.Message {
		parts = append(parts, msg.Text)
	}
	return strings.Join(parts, "; ")
}
