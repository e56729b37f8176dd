package bootstrap

import (
	"context"
	"log/slog"

	"playhall/internal/domain/pricing"
	"playhall/internal/domain/revenue"
	"playhall/internal/infra/floorstate"
	"playhall/internal/infra/snapshot"
	"playhall/internal/infra/ticker"
	"playhall/internal/pkg/clock"
	"playhall/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		pricing.DefaultCatalog,
		floorstate.NewStore,
		NewSnapshotGateway,
		NewTicker,
	),
	fx.Invoke(
		RestoreFloor,
		RunTicker,
	),
)

func NewSnapshotGateway(cfg config.Config, catalog pricing.Catalog, logger *slog.Logger) *snapshot.Gateway {
	return snapshot.NewGateway(cfg.Snapshot, catalog, logger)
}

func NewTicker(store *floorstate.Store, gateway *snapshot.Gateway, clk clock.Clock, cfg config.Config, logger *slog.Logger) *ticker.Ticker {
	return ticker.New(store, gateway, clk, cfg.Snapshot, logger)
}

// RestoreFloor loads the last snapshot and seeds whatever stations the
// config adds on top. A missing or corrupt snapshot downgrades to a fresh
// all-available floor; the venue must always be able to open.
func RestoreFloor(store *floorstate.Store, gateway *snapshot.Gateway, clk clock.Clock, catalog pricing.Catalog, cfg config.Config, logger *slog.Logger) error {
	floor, err := gateway.Load(clk.Now())
	if err != nil {
		logger.Warn("snapshot unavailable, starting with a fresh floor", "error", err)
		floor = floorstate.NewFloor(nil, revenue.NewState())
	}
	if err := floor.Seed(cfg.Floor, catalog); err != nil {
		return err
	}
	store.Replace(floor)
	return nil
}

func RunTicker(lc fx.Lifecycle, t *ticker.Ticker, store *floorstate.Store, gateway *snapshot.Gateway, clk clock.Clock, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go t.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			t.Wait()
			// Final snapshot on shutdown, best-effort like the tick itself
			now := clk.Now()
			if err := store.Read(func(floor *floorstate.Floor) error {
				return gateway.Save(floor, now)
			}); err != nil {
				logger.Warn("final snapshot failed", "error", err)
			}
			return nil
		},
	})
}
