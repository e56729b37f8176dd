package ticker

import (
	"context"
	"log/slog"
	"time"

	"playhall/internal/infra/floorstate"
	"playhall/internal/infra/snapshot"
	"playhall/internal/pkg/clock"
	"playhall/internal/pkg/config"
)

// Ticker drives the 1 Hz snapshot loop for the lifetime of the process.
// Writes are fire-and-forget and coalesced: a tick persists only when the
// floor mutated since the last write or at least one station is occupied.
// Correctness does not depend on the write cadence; load-time reconciliation
// recovers elapsed time from the wall clock.
type Ticker struct {
	store    *floorstate.Store
	gateway  *snapshot.Gateway
	clk      clock.Clock
	interval time.Duration
	logger   *slog.Logger
	done     chan struct{}
}

func New(store *floorstate.Store, gateway *snapshot.Gateway, clk clock.Clock, cfg config.SnapshotConfig, logger *slog.Logger) *Ticker {
	return &Ticker{
		store:    store,
		gateway:  gateway,
		clk:      clk,
		interval: cfg.TickInterval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

func (t *Ticker) Run(ctx context.Context) {
	defer close(t.done)

	tick := time.NewTicker(t.interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			t.Tick()
		}
	}
}

// Tick performs one coalesced snapshot pass. Safe to call at any time; it
// depends only on current state and never on a previous tick's output.
func (t *Ticker) Tick() {
	if !t.store.ConsumeDirty() {
		return
	}
	now := t.clk.Now()
	if err := t.store.Read(func(floor *floorstate.Floor) error {
		return t.gateway.Save(floor, now)
	}); err != nil {
		// Best-effort: a lost write is recovered at next load from the wall
		// clock, so it is logged and swallowed.
		t.logger.Warn("snapshot tick failed", "error", err)
	}
}

func (t *Ticker) Wait() {
	<-t.done
}
