//go:build unit

package station_test

import (
	"testing"
	"time"

	"playhall/internal/domain/pricing"
	"playhall/internal/domain/session"
	"playhall/internal/domain/station"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

func consoleStation(t *testing.T) *station.Station {
	t.Helper()
	catalog := pricing.DefaultCatalog()
	section, err := catalog.Section(pricing.CategoryConsole)
	require.NoError(t, err)

	st, err := station.New("console-1", "Console 1", pricing.CategoryConsole, section)
	require.NoError(t, err)
	return st
}

func TestNew(t *testing.T) {
	t.Run("rejects blank id, blank name, unknown category", func(t *testing.T) {
		section := pricing.NewSection(pricing.NewMoney(4000), []pricing.Offer{pricing.NewOpenEndedOffer("open")})

		_, err := station.New("", "Console 1", pricing.CategoryConsole, section)
		assert.ErrorIs(t, err, station.ErrEmptyID)

		_, err = station.New("console-1", "  ", pricing.CategoryConsole, section)
		assert.ErrorIs(t, err, station.ErrEmptyName)

		_, err = station.New("console-1", "Console 1", pricing.Category("arcade"), section)
		assert.ErrorIs(t, err, station.ErrInvalidCategory)
	})
}

func TestStatus(t *testing.T) {
	t.Run("tracks the session lifecycle", func(t *testing.T) {
		st := consoleStation(t)
		assert.Equal(t, station.StatusAvailable, st.Status())
		assert.Nil(t, st.Session())

		_, err := st.Start("Walk-in", 0, t0)
		require.NoError(t, err)
		assert.Equal(t, station.StatusOccupied, st.Status())
		require.NotNil(t, st.Session())

		require.NoError(t, st.Session().Pause(t0.Add(5*time.Minute)))
		assert.Equal(t, station.StatusPaused, st.Status())

		require.NoError(t, st.Session().Resume(t0.Add(8*time.Minute)))
		assert.Equal(t, station.StatusOccupied, st.Status())

		_, _, err = st.Finish(t0.Add(30 * time.Minute))
		require.NoError(t, err)
		assert.Equal(t, station.StatusAvailable, st.Status())
		assert.Nil(t, st.Session())
	})
}

func TestStart(t *testing.T) {
	t.Run("fails when already occupied", func(t *testing.T) {
		st := consoleStation(t)
		_, err := st.Start("First", 0, t0)
		require.NoError(t, err)

		_, err = st.Start("Second", 0, t0.Add(time.Minute))
		assert.ErrorIs(t, err, station.ErrOccupied)

		// the original session stays untouched
		assert.Equal(t, "First", st.Session().Customer().String())
	})

	t.Run("fails on an out-of-range offer index", func(t *testing.T) {
		st := consoleStation(t)

		_, err := st.Start("Walk-in", 99, t0)
		assert.Error(t, err)
		assert.Equal(t, station.StatusAvailable, st.Status())
	})

	t.Run("open-ended offer starts a metered session at the section rate", func(t *testing.T) {
		st := consoleStation(t)
		offers := st.Section().Offers()
		openIdx := len(offers) - 1
		require.True(t, offers[openIdx].IsOpenEnded())

		sess, err := st.Start("Walk-in", openIdx, t0)
		require.NoError(t, err)
		assert.Equal(t, session.ModeMetered, sess.Billing().Mode())
		assert.Equal(t, st.Section().HourlyRate(), sess.Billing().HourlyRate())
	})
}

func TestFinish(t *testing.T) {
	t.Run("fails without an active session", func(t *testing.T) {
		st := consoleStation(t)

		_, _, err := st.Finish(t0)
		assert.ErrorIs(t, err, station.ErrNoSession)
	})

	t.Run("returns the closed session and its final charge", func(t *testing.T) {
		st := consoleStation(t)
		opened, err := st.Start("Walk-in", 1, t0) // one hour, 4000
		require.NoError(t, err)
		_, err = opened.AddOrderItem("Cola", pricing.NewMoney(500), t0.Add(time.Minute))
		require.NoError(t, err)

		closed, charge, err := st.Finish(t0.Add(45 * time.Minute))
		require.NoError(t, err)
		assert.Equal(t, opened.ID(), closed.ID())
		assert.Equal(t, int64(4000), charge.TimeCharge.Units())
		assert.Equal(t, int64(500), charge.ItemsCharge.Units())
		assert.Equal(t, int64(4500), charge.Total.Units())
	})
}

func TestRestore(t *testing.T) {
	t.Run("reattaches a persisted session", func(t *testing.T) {
		st := consoleStation(t)
		sess := session.Open("Returning", pricing.NewOpenEndedOffer("open"), pricing.NewMoney(4000), t0)

		st.Restore(sess)
		assert.Equal(t, station.StatusOccupied, st.Status())
		assert.Same(t, sess, st.Session())
	})
}
