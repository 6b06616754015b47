package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"hunterlog/internal/config"
	"hunterlog/internal/engine"
	"hunterlog/internal/logging"
	"hunterlog/internal/storage"
)

func openSlots(ctx context.Context, cfg config.Config) (storage.Slots, error) {
	switch cfg.Store {
	case config.StoreBolt:
		return storage.OpenBoltSlots(cfg.DBPath)
	case config.StoreSQLite:
		return storage.OpenSQLiteSlots(ctx, cfg.DBPath)
	default:
		return nil, fmt.Errorf("invalid store %q", cfg.Store)
	}
}

func openService(cmd *cobra.Command, opts *globalOptions) (*engine.Service, func(), error) {
	ctx := cmd.Context()
	cfg, err := opts.config()
	if err != nil {
		return nil, nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}
	slots, err := openSlots(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	log := logging.FromContext(ctx)
	svc, err := engine.Open(ctx, slots, engine.WithLocation(loc), engine.WithLogger(log))
	if err != nil {
		_ = slots.Close()
		return nil, nil, err
	}
	log.Debugw("state opened", "store", cfg.Store, "path", cfg.DBPath)
	cleanup := func() {
		_ = svc.Close()
	}
	return svc, cleanup, nil
}
