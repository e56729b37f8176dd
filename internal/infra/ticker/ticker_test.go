//go:build unit

package ticker_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"playhall/internal/domain/pricing"
	"playhall/internal/infra/floorstate"
	"playhall/internal/infra/snapshot"
	"playhall/internal/infra/ticker"
	"playhall/internal/pkg/clock"
	"playhall/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

func newTicker(t *testing.T) (*ticker.Ticker, *floorstate.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "playhall-state.json")
	cfg := config.SnapshotConfig{Path: path, TickInterval: time.Second, Staleness: 24 * time.Hour}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := floorstate.NewStore()
	gw := snapshot.NewGateway(cfg, pricing.DefaultCatalog(), logger)
	return ticker.New(store, gw, clock.NewMockClock(t0), cfg, logger), store, path
}

func TestTick(t *testing.T) {
	t.Run("clean floor writes nothing", func(t *testing.T) {
		tk, store, path := newTicker(t)
		store.ConsumeDirty()

		tk.Tick()

		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("mutation triggers exactly one write", func(t *testing.T) {
		tk, store, path := newTicker(t)
		require.NoError(t, store.Mutate(func(floor *floorstate.Floor) error {
			return floor.Seed(config.FloorConfig{Tables: 1, Consoles: 1, Workstations: 1, DiningSpots: 1}, pricing.DefaultCatalog())
		}))

		tk.Tick()
		info, err := os.Stat(path)
		require.NoError(t, err)

		// second tick coalesces away while nothing is occupied
		require.NoError(t, os.Remove(path))
		tk.Tick()
		_, err = os.Stat(path)
		assert.True(t, os.IsNotExist(err), "expected no rewrite after %v", info.ModTime())
	})

	t.Run("occupied stations keep ticking out writes", func(t *testing.T) {
		tk, store, path := newTicker(t)
		require.NoError(t, store.Mutate(func(floor *floorstate.Floor) error {
			if err := floor.Seed(config.FloorConfig{Tables: 1, Consoles: 1, Workstations: 1, DiningSpots: 1}, pricing.DefaultCatalog()); err != nil {
				return err
			}
			st, err := floor.Station("console-1")
			if err != nil {
				return err
			}
			_, err = st.Start("Walk-in", 0, t0)
			return err
		}))

		tk.Tick()
		require.NoError(t, os.Remove(path))

		tk.Tick()
		_, err := os.Stat(path)
		assert.NoError(t, err)
	})
}
