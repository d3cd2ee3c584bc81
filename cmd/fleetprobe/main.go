// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

// Package main is a diagnostic probe for the telematics back end.
//
// fleetprobe loads configuration, logs in with the configured API
// token, lists the units visible to the account, and logs out again.
// It is the quickest way to verify that a token, host selection and
// network path are all working before wiring the library into an
// application.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (TGPS_ prefix, e.g. TGPS_WIALON_TOKEN)
//   - Config file (terminusgps.yaml, or TGPS_CONFIG_PATH)
//   - Built-in defaults
//
// # Example Usage
//
// Against the production back end:
//
//	export TGPS_WIALON_TOKEN=your-72-char-token
//	./fleetprobe
//
// Against the sandbox:
//
//	export TGPS_WIALON_TOKEN=your-72-char-token
//	export TGPS_WIALON_SANDBOX=true
//	./fleetprobe
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/terminusgps/terminusgps-go/internal/config"
	"github.com/terminusgps/terminusgps-go/internal/logging"
	"github.com/terminusgps/terminusgps-go/internal/models/wialon"
	"github.com/terminusgps/terminusgps-go/internal/telematics"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("host", cfg.Wialon.EffectiveHost()).
		Bool("sandbox", cfg.Wialon.Sandbox).
		Bool("breaker", cfg.Breaker.Enabled).
		Msg("Starting fleetprobe")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, 2*time.Minute)
	defer cancelTimeout()

	ctx = logging.ContextWithNewCorrelationID(ctx)
	mgr := telematics.NewManager(cfg, nil)
	sess := mgr.Session()

	err = telematics.WithSession(ctx, sess, 0, func(ctx context.Context, s *telematics.Session) error {
		log := logging.Ctx(ctx)
		info := s.Info()
		log.Info().
			Str("user", info.UserName).
			Int64("user_id", info.UserID).
			Str("wsdk", info.WsdkVersion).
			Msg("Session established")

		units, err := listUnits(ctx, s)
		if err != nil {
			return err
		}
		for _, u := range units {
			log.Info().
				Int64("id", u.ID).
				Str("name", u.Name).
				Str("uid", u.UniqueID).
				Str("phone", u.Phone).
				Msg("Unit")
		}
		log.Info().Int("units", len(units)).Msg("Probe complete")
		return nil
	})
	if err != nil {
		logging.Error().Err(err).Msg("Probe failed")
		reportRecorder(sess)
		os.Exit(1)
	}
	reportRecorder(sess)
}

// listUnits fetches every unit visible to the session.
func listUnits(ctx context.Context, s *telematics.Session) ([]wialon.Item, error) {
	req := wialon.SearchItemsRequest{
		Spec: wialon.SearchSpec{
			ItemsType:     telematics.TypeUnit.Class(),
			PropName:      "sys_name",
			PropValueMask: "*",
			SortType:      "sys_name",
		},
		Force: 1,
		Flags: uint64(telematics.DataBase),
		From:  0,
		To:    0,
	}
	var resp wialon.SearchItemsResponse
	if err := s.Call(ctx, telematics.ActionSearchItems, req, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// reportRecorder summarises the session's call history.
func reportRecorder(s *telematics.Session) {
	rec := s.Recorder()
	ev := logging.Info().
		Uint64("calls", rec.Total()).
		Uint64("failures", rec.Failures())
	if rec.Total() > 0 {
		ev = ev.Float64("failure_rate", rec.FailureRate())
	}
	ev.Msg("Call history")
}
