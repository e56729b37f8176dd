//go:build e2e

package session_test

import (
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"playhall/internal/handler/dto/response"
	"playhall/tests/common/httptest"
	"playhall/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	stationsURL = "/api/stations"
	revenueURL  = "/api/revenue"
	pricingURL  = "/api/pricing"
)

type SessionSuite struct {
	e2e.SharedSuite
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

// =============================================================================
// TestSessionLifecycle - full rent/pause/order/finish flow over HTTP
// =============================================================================

func (s *SessionSuite) TestSessionLifecycle() {
	t := s.T()

	s.Run("Normal case: full lifecycle bills time and orders", func() {
		// the floor starts all available
		w := httptest.PerformRequest(t, s.Env.Router, http.MethodGet, stationsURL, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var stations []response.StationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &stations))
		require.NotEmpty(t, stations)
		for _, st := range stations {
			require.Equal(t, "available", st.Status)
		}

		// start an open-ended console session (offer index 3, 4000/h)
		startBody := map[string]any{"customer": "Omar", "offerIndex": 3}
		w = httptest.PerformRequest(t, s.Env.Router, http.MethodPost, stationsURL+"/console-1/session", startBody)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// half an hour in, order a drink
		s.Env.Clock.Add(30 * time.Minute)
		w = httptest.PerformRequest(t, s.Env.Router, http.MethodPost, stationsURL+"/console-1/session/orders",
			map[string]any{"name": "Cola", "price": 500})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var station response.StationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &station))
		require.NotNil(t, station.Session)
		require.EqualValues(t, 2000, station.Session.TimeCharge)
		require.EqualValues(t, 500, station.Session.ItemsCharge)

		// a one-hour pause accrues nothing
		w = httptest.PerformRequest(t, s.Env.Router, http.MethodPost, stationsURL+"/console-1/session/pause", nil)
		require.Equal(t, http.StatusOK, w.Code)
		s.Env.Clock.Add(time.Hour)
		w = httptest.PerformRequest(t, s.Env.Router, http.MethodPost, stationsURL+"/console-1/session/resume", nil)
		require.Equal(t, http.StatusOK, w.Code)

		// another half hour, then close out: 60 active minutes total
		s.Env.Clock.Add(30 * time.Minute)
		w = httptest.PerformRequest(t, s.Env.Router, http.MethodPost, stationsURL+"/console-1/session/finish", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var invoice response.InvoiceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &invoice))
		require.EqualValues(t, 60, invoice.ActiveMinutes)
		require.EqualValues(t, 4000, invoice.TimeCharge)
		require.EqualValues(t, 500, invoice.ItemsCharge)
		require.EqualValues(t, 4500, invoice.Total)

		// the invoice landed in the revenue aggregates
		w = httptest.PerformRequest(t, s.Env.Router, http.MethodGet, revenueURL, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var rev response.RevenueResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rev))
		require.EqualValues(t, 4500, rev.Lifetime)
		require.Equal(t, 1, rev.Daily.Invoices)

		// and the station is rentable again
		w = httptest.PerformRequest(t, s.Env.Router, http.MethodGet, stationsURL+"/console-1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &station))
		require.Equal(t, "available", station.Status)
	})

	s.Run("Error case: conflicting operations are rejected", func() {
		w := httptest.PerformRequest(t, s.Env.Router, http.MethodPost, stationsURL+"/table-1/session",
			map[string]any{"customer": "A", "offerIndex": 0})
		require.Equal(t, http.StatusCreated, w.Code)

		// double start
		w = httptest.PerformRequest(t, s.Env.Router, http.MethodPost, stationsURL+"/table-1/session",
			map[string]any{"customer": "B", "offerIndex": 0})
		require.Equal(t, http.StatusConflict, w.Code)

		// resume without pause
		w = httptest.PerformRequest(t, s.Env.Router, http.MethodPost, stationsURL+"/table-1/session/resume", nil)
		require.Equal(t, http.StatusConflict, w.Code)

		// unknown station
		w = httptest.PerformRequest(t, s.Env.Router, http.MethodPost, stationsURL+"/table-99/session/finish", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestRestartRecovery - sessions and revenue survive a process restart
// =============================================================================

func (s *SessionSuite) TestRestartRecovery() {
	t := s.T()
	path := filepath.Join(t.TempDir(), "playhall-state.json")
	t0 := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

	env := e2e.SetupEnv(t, path, t0)

	// open a metered session and bank one finished invoice
	w := httptest.PerformRequest(t, env.Router, http.MethodPost, stationsURL+"/console-1/session",
		map[string]any{"customer": "Omar", "offerIndex": 3})
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.PerformRequest(t, env.Router, http.MethodPost, stationsURL+"/console-2/session",
		map[string]any{"customer": "Nour", "offerIndex": 1})
	require.Equal(t, http.StatusCreated, w.Code)
	env.Clock.Add(time.Hour)
	w = httptest.PerformRequest(t, env.Router, http.MethodPost, stationsURL+"/console-2/session/finish", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// persistence runs on the tick, not on the request path
	env.Ticker.Tick()

	// "restart" 30 minutes later: same snapshot file, fresh process
	restarted := e2e.SetupEnv(t, path, t0.Add(90*time.Minute))

	w = httptest.PerformRequest(t, restarted.Router, http.MethodGet, stationsURL+"/console-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var station response.StationResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &station))
	require.Equal(t, "occupied", station.Status)
	require.NotNil(t, station.Session)
	require.Equal(t, "Omar", station.Session.Customer)
	// downtime counts for metered billing: 90 minutes at 4000/h
	require.EqualValues(t, 6000, station.Session.TimeCharge)

	var rev response.RevenueResponse
	w = httptest.PerformRequest(t, restarted.Router, http.MethodGet, revenueURL, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rev))
	require.EqualValues(t, 4000, rev.Lifetime)
	require.Equal(t, 1, rev.Daily.Invoices)
}

// =============================================================================
// TestPricingCatalog
// =============================================================================

func (s *SessionSuite) TestPricingCatalog() {
	t := s.T()

	w := httptest.PerformRequest(t, s.Env.Router, http.MethodGet, pricingURL, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var catalog []response.CategoryPricingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &catalog))
	require.Len(t, catalog, 4)
	for _, section := range catalog {
		require.NotEmpty(t, section.Offers)
		require.True(t, section.Offers[len(section.Offers)-1].OpenEnded)
	}
}
