//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"playhall/internal/domain/pricing"
	"playhall/internal/infra/floorstate"
	"playhall/internal/pkg/clock"
	"playhall/internal/pkg/config"
	"playhall/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) (commands.SessionCommands, *floorstate.Store, *clock.MockClock) {
	t.Helper()
	store := floorstate.NewStore()
	err := store.Mutate(func(floor *floorstate.Floor) error {
		return floor.Seed(config.FloorConfig{Tables: 1, Consoles: 2, Workstations: 1, DiningSpots: 1}, pricing.DefaultCatalog())
	})
	require.NoError(t, err)

	clk := clock.NewMockClock(t0)
	return commands.NewSessionCommands(store, clk), store, clk
}

func TestStart(t *testing.T) {
	t.Run("opens a session and returns the fresh view", func(t *testing.T) {
		cmds, _, _ := newFixture(t)

		view, err := cmds.Start(context.Background(), commands.StartSessionParams{
			StationID:  "console-1",
			Customer:   "Omar",
			OfferIndex: 1, // one hour, 4000
		})
		require.NoError(t, err)

		assert.Equal(t, "console-1", view.ID)
		assert.Equal(t, "occupied", view.Status)
		require.NotNil(t, view.Session)
		assert.Equal(t, "Omar", view.Session.Customer)
		assert.Equal(t, int64(4000), view.Session.TimeCharge)
		require.NotNil(t, view.Session.RemainingSeconds)
		assert.Equal(t, int64(3600), *view.Session.RemainingSeconds)
	})

	t.Run("unknown station", func(t *testing.T) {
		cmds, _, _ := newFixture(t)

		_, err := cmds.Start(context.Background(), commands.StartSessionParams{StationID: "console-99", OfferIndex: 0})
		assert.ErrorIs(t, err, commands.ErrStationNotFound)
	})

	t.Run("occupied station", func(t *testing.T) {
		cmds, _, _ := newFixture(t)
		_, err := cmds.Start(context.Background(), commands.StartSessionParams{StationID: "console-1", OfferIndex: 0})
		require.NoError(t, err)

		_, err = cmds.Start(context.Background(), commands.StartSessionParams{StationID: "console-1", OfferIndex: 0})
		assert.ErrorIs(t, err, commands.ErrStationOccupied)
	})

	t.Run("out-of-range offer index", func(t *testing.T) {
		cmds, _, _ := newFixture(t)

		_, err := cmds.Start(context.Background(), commands.StartSessionParams{StationID: "console-1", OfferIndex: 99})
		assert.ErrorIs(t, err, commands.ErrInvalidOffer)
	})
}

func TestPauseResume(t *testing.T) {
	t.Run("round trip preserves remaining time", func(t *testing.T) {
		cmds, _, clk := newFixture(t)
		_, err := cmds.Start(context.Background(), commands.StartSessionParams{StationID: "console-1", OfferIndex: 1})
		require.NoError(t, err)

		clk.Add(10 * time.Minute)
		paused, err := cmds.Pause(context.Background(), "console-1")
		require.NoError(t, err)
		assert.Equal(t, "paused", paused.Status)
		require.NotNil(t, paused.Session.RemainingSeconds)
		assert.Equal(t, int64(50*60), *paused.Session.RemainingSeconds)

		clk.Add(7 * time.Minute)
		resumed, err := cmds.Resume(context.Background(), "console-1")
		require.NoError(t, err)
		assert.Equal(t, "occupied", resumed.Status)
		require.NotNil(t, resumed.Session.RemainingSeconds)
		assert.Equal(t, int64(50*60), *resumed.Session.RemainingSeconds)
	})

	t.Run("pause without a session", func(t *testing.T) {
		cmds, _, _ := newFixture(t)

		_, err := cmds.Pause(context.Background(), "console-1")
		assert.ErrorIs(t, err, commands.ErrNoActiveSession)
	})

	t.Run("double pause", func(t *testing.T) {
		cmds, _, _ := newFixture(t)
		_, err := cmds.Start(context.Background(), commands.StartSessionParams{StationID: "console-1", OfferIndex: 1})
		require.NoError(t, err)
		_, err = cmds.Pause(context.Background(), "console-1")
		require.NoError(t, err)

		_, err = cmds.Pause(context.Background(), "console-1")
		assert.ErrorIs(t, err, commands.ErrSessionAlreadyPaused)
	})

	t.Run("resume without pausing", func(t *testing.T) {
		cmds, _, _ := newFixture(t)
		_, err := cmds.Start(context.Background(), commands.StartSessionParams{StationID: "console-1", OfferIndex: 1})
		require.NoError(t, err)

		_, err = cmds.Resume(context.Background(), "console-1")
		assert.ErrorIs(t, err, commands.ErrSessionNotPaused)
	})
}

func TestExtend(t *testing.T) {
	t.Run("pushes the end time and raises the flat charge", func(t *testing.T) {
		cmds, _, clk := newFixture(t)
		_, err := cmds.Start(context.Background(), commands.StartSessionParams{StationID: "console-1", OfferIndex: 1})
		require.NoError(t, err)

		clk.Add(40 * time.Minute)
		view, err := cmds.Extend(context.Background(), commands.ExtendSessionParams{StationID: "console-1", Minutes: 30, Price: 2500})
		require.NoError(t, err)

		assert.Equal(t, int64(6500), view.Session.TimeCharge)
		require.NotNil(t, view.Session.RemainingSeconds)
		assert.Equal(t, int64(50*60), *view.Session.RemainingSeconds)
	})

	t.Run("rejected on open-ended sessions", func(t *testing.T) {
		cmds, _, _ := newFixture(t)
		_, err := cmds.Start(context.Background(), commands.StartSessionParams{StationID: "console-1", OfferIndex: 3})
		require.NoError(t, err)

		_, err = cmds.Extend(context.Background(), commands.ExtendSessionParams{StationID: "console-1", Minutes: 30, Price: 2000})
		assert.ErrorIs(t, err, commands.ErrOpenEndedExtend)
	})

	t.Run("invalid minutes mapped to validation error", func(t *testing.T) {
		cmds, _, _ := newFixture(t)
		_, err := cmds.Start(context.Background(), commands.StartSessionParams{StationID: "console-1", OfferIndex: 1})
		require.NoError(t, err)

		_, err = cmds.Extend(context.Background(), commands.ExtendSessionParams{StationID: "console-1", Minutes: 0, Price: 2000})
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestAddOrder(t *testing.T) {
	t.Run("orders roll into the running total", func(t *testing.T) {
		cmds, _, _ := newFixture(t)
		_, err := cmds.Start(context.Background(), commands.StartSessionParams{StationID: "console-1", OfferIndex: 1})
		require.NoError(t, err)

		_, err = cmds.AddOrder(context.Background(), commands.AddOrderParams{StationID: "console-1", Name: "Cola", Price: 500})
		require.NoError(t, err)
		view, err := cmds.AddOrder(context.Background(), commands.AddOrderParams{StationID: "console-1", Name: "Shisha", Price: 1500})
		require.NoError(t, err)

		assert.Equal(t, int64(2000), view.Session.ItemsCharge)
		assert.Equal(t, int64(6000), view.Session.Total)
		assert.Len(t, view.Session.Orders, 2)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		cmds, _, _ := newFixture(t)
		_, err := cmds.Start(context.Background(), commands.StartSessionParams{StationID: "console-1", OfferIndex: 1})
		require.NoError(t, err)

		_, err = cmds.AddOrder(context.Background(), commands.AddOrderParams{StationID: "console-1", Name: "  ", Price: 500})
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestFinish(t *testing.T) {
	t.Run("bills a metered session and frees the station", func(t *testing.T) {
		cmds, store, clk := newFixture(t)
		_, err := cmds.Start(context.Background(), commands.StartSessionParams{
			StationID:  "console-1",
			Customer:   "Omar",
			OfferIndex: 3, // open-ended, 4000/h
		})
		require.NoError(t, err)
		_, err = cmds.AddOrder(context.Background(), commands.AddOrderParams{StationID: "console-1", Name: "Cola", Price: 500})
		require.NoError(t, err)

		clk.Add(90 * time.Minute)
		inv, err := cmds.Finish(context.Background(), "console-1")
		require.NoError(t, err)

		assert.Equal(t, "console-1", inv.StationID)
		assert.Equal(t, "Omar", inv.Customer)
		assert.Equal(t, int64(90), inv.ActiveMinutes)
		assert.Equal(t, int64(6000), inv.TimeCharge)
		assert.Equal(t, int64(500), inv.ItemsCharge)
		assert.Equal(t, int64(6500), inv.Total)

		err = store.Read(func(floor *floorstate.Floor) error {
			st, err := floor.Station("console-1")
			require.NoError(t, err)
			assert.False(t, st.IsOccupied())
			assert.Equal(t, int64(6500), floor.Revenue().Lifetime().Units())
			assert.Equal(t, 1, floor.Revenue().Daily().Invoices)
			assert.Equal(t, 1, floor.Revenue().Daily().Items)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("second finish never double-counts", func(t *testing.T) {
		cmds, store, clk := newFixture(t)
		_, err := cmds.Start(context.Background(), commands.StartSessionParams{StationID: "console-1", OfferIndex: 1})
		require.NoError(t, err)

		clk.Add(time.Hour)
		_, err = cmds.Finish(context.Background(), "console-1")
		require.NoError(t, err)

		_, err = cmds.Finish(context.Background(), "console-1")
		assert.ErrorIs(t, err, commands.ErrNoActiveSession)

		err = store.Read(func(floor *floorstate.Floor) error {
			assert.Equal(t, int64(4000), floor.Revenue().Lifetime().Units())
			assert.Equal(t, 1, floor.Revenue().Daily().Invoices)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("paused time is excluded from the metered bill", func(t *testing.T) {
		cmds, _, clk := newFixture(t)
		_, err := cmds.Start(context.Background(), commands.StartSessionParams{StationID: "console-1", OfferIndex: 3})
		require.NoError(t, err)

		clk.Add(30 * time.Minute)
		_, err = cmds.Pause(context.Background(), "console-1")
		require.NoError(t, err)

		clk.Add(2 * time.Hour)
		_, err = cmds.Resume(context.Background(), "console-1")
		require.NoError(t, err)

		clk.Add(30 * time.Minute)
		inv, err := cmds.Finish(context.Background(), "console-1")
		require.NoError(t, err)

		assert.Equal(t, int64(60), inv.ActiveMinutes)
		assert.Equal(t, int64(4000), inv.TimeCharge)
	})
}
