// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package telematics

import (
	"context"

	"github.com/terminusgps/terminusgps-go/internal/models/wialon"
)

// RetranslatorConfig describes the relay target a retranslator
// forwards unit messages to.
type RetranslatorConfig struct {
	// Protocol is the forwarding protocol name, e.g. "wialon_ips".
	Protocol string `json:"protocol"`
	// Server is the target hostname or IP.
	Server string `json:"server"`
	// Port is the target TCP port.
	Port int `json:"port"`
	// Auth is the optional credential string the target expects.
	Auth string `json:"auth,omitempty"`
	SSL  bool   `json:"ssl"`
	// Debug enables verbose relay logging server-side.
	Debug bool `json:"debug"`
	// V6Type selects the protocol's v6 framing variant where supported.
	V6Type bool `json:"v6type"`
}

// Retranslator is the facade for a server-side message relay.
type Retranslator struct {
	Item
}

// NewRetranslator returns a retranslator facade. id 0 means not yet
// created.
func NewRetranslator(sess *Session, id int64) *Retranslator {
	return &Retranslator{Item: newItem(sess, TypeRetranslator, id)}
}

// Create registers a new retranslator owned by creatorID forwarding to
// the configured target.
func (r *Retranslator) Create(ctx context.Context, creatorID int64, name string, config RetranslatorConfig) error {
	if r.id != 0 {
		return invalidArg(ActionCreateRetranslator, "retranslator already has id %d", r.id)
	}
	if creatorID == 0 {
		return invalidArg(ActionCreateRetranslator, "creator id must be non-zero")
	}
	if name == "" {
		return invalidArg(ActionCreateRetranslator, "name must not be empty")
	}
	if config.Server == "" {
		return invalidArg(ActionCreateRetranslator, "target server must not be empty")
	}
	if config.Port <= 0 || config.Port > 65535 {
		return invalidArg(ActionCreateRetranslator, "target port %d out of range", config.Port)
	}
	params := map[string]any{
		"creatorId": creatorID,
		"name":      name,
		"config":    config,
		"dataFlags": uint64(DataBase),
	}
	var resp wialon.ItemResponse
	if err := r.sess.Call(ctx, ActionCreateRetranslator, params, &resp); err != nil {
		return err
	}
	r.setID(resp.Item.ID)
	r.name = resp.Item.Name
	return nil
}
