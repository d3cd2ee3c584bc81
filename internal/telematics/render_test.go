// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package telematics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/terminusgps/terminusgps-go/internal/models/wialon"
)

func testRenderer(t *testing.T) (*Renderer, *fakeTransport) {
	t.Helper()
	s, ft := loggedInSession(t)
	ft.respond(ActionCreateMessagesLayer, `{"name":"trip1","bounds":[29.7,-95.4,29.8,-95.3]}`)
	ft.respond(ActionEnableLayer, `{}`)
	ft.respond(ActionRemoveLayer, `{}`)
	ft.respond(ActionSetLocale, `{}`)
	return NewRenderer(s), ft
}

func TestRendererCreateMessagesLayer(t *testing.T) {
	t.Parallel()

	r, ft := testRenderer(t)
	err := r.CreateMessagesLayer(context.Background(), "trip1", 101, 1000, 2000, wialon.MessagesLayerRequest{
		TrackColor: "cc0000ff",
		TrackWidth: 3,
	})
	if err != nil {
		t.Fatalf("create layer: %v", err)
	}
	if r.Enabled("trip1") {
		t.Error("new layer starts enabled, want disabled")
	}

	var params struct {
		LayerName string `json:"layerName"`
		ItemID    int64  `json:"itemId"`
		TimeFrom  int64  `json:"timeFrom"`
		TimeTo    int64  `json:"timeTo"`
	}
	ft.lastParams(t, ActionCreateMessagesLayer, &params)
	if params.LayerName != "trip1" || params.ItemID != 101 || params.TimeFrom != 1000 || params.TimeTo != 2000 {
		t.Errorf("params = %+v", params)
	}
}

func TestRendererCreateDuplicateLayerRejected(t *testing.T) {
	t.Parallel()

	r, ft := testRenderer(t)
	ctx := context.Background()
	if err := r.CreateMessagesLayer(ctx, "trip1", 101, 1000, 2000, wialon.MessagesLayerRequest{}); err != nil {
		t.Fatalf("create layer: %v", err)
	}
	before := ft.count(ActionCreateMessagesLayer)
	err := r.CreateMessagesLayer(ctx, "trip1", 101, 1000, 2000, wialon.MessagesLayerRequest{})
	var invalid *InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %T (%v), want *InvalidArgumentError", err, err)
	}
	if got := ft.count(ActionCreateMessagesLayer); got != before {
		t.Error("duplicate create issued an RPC")
	}
}

func TestRendererToggleIdempotence(t *testing.T) {
	t.Parallel()

	r, ft := testRenderer(t)
	ctx := context.Background()
	if err := r.CreateMessagesLayer(ctx, "trip1", 101, 1000, 2000, wialon.MessagesLayerRequest{}); err != nil {
		t.Fatalf("create layer: %v", err)
	}

	// Disabling a never-enabled layer issues no RPC.
	if err := r.Disable(ctx, "trip1"); err != nil {
		t.Fatalf("disable: %v", err)
	}
	if got := ft.count(ActionEnableLayer); got != 0 {
		t.Errorf("disable on fresh layer issued %d RPCs, want 0", got)
	}

	// First enable toggles; the second is a no-op.
	if err := r.Enable(ctx, "trip1"); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if err := r.Enable(ctx, "trip1"); err != nil {
		t.Fatalf("second enable: %v", err)
	}
	if got := ft.count(ActionEnableLayer); got != 1 {
		t.Errorf("double enable issued %d RPCs, want 1", got)
	}
	if !r.Enabled("trip1") {
		t.Error("layer not enabled locally")
	}

	if err := r.Disable(ctx, "trip1"); err != nil {
		t.Fatalf("disable: %v", err)
	}
	if got := ft.count(ActionEnableLayer); got != 2 {
		t.Errorf("toggles issued %d RPCs, want 2", got)
	}
}

func TestRendererRemoveDropsLayer(t *testing.T) {
	t.Parallel()

	r, ft := testRenderer(t)
	ctx := context.Background()
	if err := r.CreateMessagesLayer(ctx, "trip1", 101, 1000, 2000, wialon.MessagesLayerRequest{}); err != nil {
		t.Fatalf("create layer: %v", err)
	}
	if err := r.Remove(ctx, "trip1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(r.Layers()) != 0 {
		t.Errorf("Layers() = %v after remove, want empty", r.Layers())
	}
	var invalid *InvalidArgumentError
	if err := r.Enable(ctx, "trip1"); !errors.As(err, &invalid) {
		t.Errorf("enable after remove error = %v, want *InvalidArgumentError", err)
	}
	if got := ft.count(ActionRemoveLayer); got != 1 {
		t.Errorf("render_remove_layer dispatched %d times, want 1", got)
	}
}

func TestRendererSetLocaleValidatesDensity(t *testing.T) {
	t.Parallel()

	r, ft := testRenderer(t)
	ctx := context.Background()

	if err := r.SetLocale(ctx, -21600, "en", MeasureUS, "%m/%d/%Y", 3); err != nil {
		t.Fatalf("set locale: %v", err)
	}
	var params struct {
		TZ       int    `json:"tzOffset"`
		Language string `json:"language"`
		Density  int    `json:"density"`
	}
	ft.lastParams(t, ActionSetLocale, &params)
	if params.TZ != -21600 || params.Language != "en" || params.Density != 3 {
		t.Errorf("params = %+v", params)
	}

	var invalid *InvalidArgumentError
	for _, density := range []int{0, 6, -1} {
		if err := r.SetLocale(ctx, 0, "en", MeasureMetric, "", density); !errors.As(err, &invalid) {
			t.Errorf("density %d error = %v, want *InvalidArgumentError", density, err)
		}
	}
	if got := ft.count(ActionSetLocale); got != 1 {
		t.Errorf("render_set_locale dispatched %d times, want 1", got)
	}
}

func TestRendererTileURLDeterministicPerSession(t *testing.T) {
	t.Parallel()

	r, _ := testRenderer(t)
	a, err := r.TileURL(3, 4, 5)
	if err != nil {
		t.Fatalf("tile url: %v", err)
	}
	b, err := r.TileURL(3, 4, 5)
	if err != nil {
		t.Fatalf("tile url: %v", err)
	}
	if a != b {
		t.Errorf("tile url not stable: %q vs %q", a, b)
	}
	want := fmt.Sprintf("/avl_render/3_4_5/%s.png", testSID)
	if !strings.HasSuffix(a, want) {
		t.Errorf("tile url = %q, want suffix %q", a, want)
	}
	if !strings.Contains(a, "/adfurl") {
		t.Errorf("tile url = %q, want adfurl bucket", a)
	}
	if !strings.HasPrefix(a, "https://render.example.invalid/") {
		t.Errorf("tile url = %q, want render host prefix", a)
	}
}

func TestRendererTileURLVariesAcrossSessions(t *testing.T) {
	t.Parallel()

	// Bucket indexes come from a PRNG seeded by the session id; across
	// enough distinct ids more than one bucket must appear.
	seen := make(map[int]struct{})
	for i := 0; i < 64; i++ {
		seen[tileBucket(fmt.Sprintf("S%d", i))] = struct{}{}
	}
	if len(seen) < 2 {
		t.Errorf("64 session ids mapped to %d bucket(s), want several", len(seen))
	}
	for bucket := range seen {
		if bucket < 0 || bucket >= tileURLBuckets {
			t.Errorf("bucket %d outside [0,%d)", bucket, tileURLBuckets)
		}
	}
}

func TestRendererTileURLRequiresLogin(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t)
	r := NewRenderer(s)
	if _, err := r.TileURL(1, 2, 3); err == nil {
		t.Error("tile url on logged-out session succeeded")
	}
}
