// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package telematics

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"

	"github.com/terminusgps/terminusgps-go/internal/models/wialon"
)

// tileURLBuckets is the number of adfurl prefixes the render cluster
// exposes; the prefix defeats proxy caching of tiles.
const tileURLBuckets = 4

// MeasurementFlags select the measurement system for SetLocale.
const (
	MeasureMetric   uint64 = 0x00
	MeasureUS       uint64 = 0x01
	MeasureImperial uint64 = 0x02
)

// layerState tracks one named layer's local toggle state.
type layerState struct {
	enabled bool
	unitID  int64
	from    int64
	to      int64
}

// Renderer manages message-track map layers on one session.
//
// Layer state is tracked locally so Enable/Disable are idempotent: the
// toggle RPC is issued only when the local state actually changes.
// Like the Session it is bound to, a Renderer is used from one
// goroutine at a time.
type Renderer struct {
	sess   *Session
	layers map[string]layerState
}

// NewRenderer binds a renderer to the session.
func NewRenderer(sess *Session) *Renderer {
	return &Renderer{sess: sess, layers: make(map[string]layerState)}
}

// Layers returns the names of the layers currently tracked.
func (r *Renderer) Layers() []string {
	names := make([]string, 0, len(r.layers))
	for name := range r.layers {
		names = append(names, name)
	}
	return names
}

// Enabled reports the local toggle state of a layer.
func (r *Renderer) Enabled(name string) bool {
	return r.layers[name].enabled
}

// CreateMessagesLayer renders a unit's message track between from and
// to (epoch seconds) into a named layer. The layer starts disabled.
func (r *Renderer) CreateMessagesLayer(ctx context.Context, name string, unitID, from, to int64, req wialon.MessagesLayerRequest) error {
	if name == "" {
		return invalidArg(ActionCreateMessagesLayer, "layer name must not be empty")
	}
	if unitID == 0 {
		return invalidArg(ActionCreateMessagesLayer, "unit id must be non-zero")
	}
	if to < from {
		return invalidArg(ActionCreateMessagesLayer, "window end %d precedes start %d", to, from)
	}
	if _, exists := r.layers[name]; exists {
		return invalidArg(ActionCreateMessagesLayer, "layer %q already exists", name)
	}
	req.LayerName = name
	req.ItemID = unitID
	req.TimeFrom = from
	req.TimeTo = to
	var info wialon.LayerInfo
	if err := r.sess.Call(ctx, ActionCreateMessagesLayer, req, &info); err != nil {
		return err
	}
	r.layers[name] = layerState{unitID: unitID, from: from, to: to}
	return nil
}

// Enable turns a layer on. Enabling an already enabled layer issues no
// RPC.
func (r *Renderer) Enable(ctx context.Context, name string) error {
	return r.toggle(ctx, name, true)
}

// Disable turns a layer off. Disabling a never-enabled layer issues no
// RPC.
func (r *Renderer) Disable(ctx context.Context, name string) error {
	return r.toggle(ctx, name, false)
}

func (r *Renderer) toggle(ctx context.Context, name string, enable bool) error {
	state, ok := r.layers[name]
	if !ok {
		return invalidArg(ActionEnableLayer, "unknown layer %q", name)
	}
	if state.enabled == enable {
		return nil
	}
	params := map[string]any{"layerName": name, "enable": boolToInt(enable)}
	if err := r.sess.Call(ctx, ActionEnableLayer, params, nil); err != nil {
		return err
	}
	state.enabled = enable
	r.layers[name] = state
	return nil
}

// Remove deletes a layer server-side and drops the local record.
func (r *Renderer) Remove(ctx context.Context, name string) error {
	if _, ok := r.layers[name]; !ok {
		return invalidArg(ActionRemoveLayer, "unknown layer %q", name)
	}
	params := map[string]any{"layerName": name}
	if err := r.sess.Call(ctx, ActionRemoveLayer, params, nil); err != nil {
		return err
	}
	delete(r.layers, name)
	return nil
}

// SetLocale configures the session's rendering locale: tz is the UTC
// offset in seconds, flags selects the measurement system, density the
// tile density band (1..5).
func (r *Renderer) SetLocale(ctx context.Context, tz int, lang string, flags uint64, dateFormat string, density int) error {
	if density < 1 || density > 5 {
		return invalidArg(ActionSetLocale, "density %d outside 1..5", density)
	}
	req := wialon.SetLocaleRequest{
		TimeZone:   tz,
		Language:   lang,
		Flags:      flags,
		DateFormat: dateFormat,
		Density:    density,
	}
	return r.sess.Call(ctx, ActionSetLocale, req, nil)
}

// TileURL builds the tile address for the given coordinates. The
// adfurl bucket index is drawn from a PRNG seeded by an FNV hash of
// the session id: stable for one session, different across sessions,
// which spreads tiles over the render cluster while staying cacheable
// per client.
func (r *Renderer) TileURL(x, y, z int) (string, error) {
	sid := r.sess.SID()
	if sid == "" {
		return "", invalidArg("tile url", "session is not logged in")
	}
	host := r.renderHost()
	n := tileBucket(sid)
	return fmt.Sprintf("%s/adfurl%d/avl_render/%d_%d_%d/%s.png", host, n, x, y, z, sid), nil
}

// renderHost picks the render endpoint announced at login, falling back
// to the API host.
func (r *Renderer) renderHost() string {
	if info := r.sess.Info(); info != nil && info.GisRenderURL != "" {
		return strings.TrimRight(info.GisRenderURL, "/")
	}
	return strings.TrimRight(r.sess.cfg.Wialon.EffectiveHost(), "/")
}

// tileBucket derives the deterministic adfurl index for a session id.
func tileBucket(sid string) int {
	h := fnv.New64a()
	h.Write([]byte(sid))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))
	return rng.Intn(tileURLBuckets)
}
