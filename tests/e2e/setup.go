//go:build e2e

package e2e

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"playhall/internal/domain/pricing"
	"playhall/internal/domain/revenue"
	"playhall/internal/handler"
	"playhall/internal/handler/api"
	"playhall/internal/infra"
	"playhall/internal/infra/floorstate"
	"playhall/internal/infra/snapshot"
	"playhall/internal/infra/ticker"
	"playhall/internal/pkg/clock"
	"playhall/internal/pkg/config"
	"playhall/internal/usecase/commands"
	"playhall/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// Env is a fully wired application without the listening socket: real
// store, real snapshot gateway against a per-test file, and a mock clock so
// tests control billing time.
type Env struct {
	Router  *gin.Engine
	Store   *floorstate.Store
	Gateway *snapshot.Gateway
	Ticker  *ticker.Ticker
	Clock   *clock.MockClock
	Config  config.Config
}

// SetupEnv boots the stack the way cmd/bootstrap does, restore-or-seed
// included. Call it again with the same snapshotPath to simulate a process
// restart.
func SetupEnv(t *testing.T, snapshotPath string, now time.Time) *Env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	cfg.Snapshot.Path = snapshotPath

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	catalog := pricing.DefaultCatalog()
	clk := clock.NewMockClock(now)

	store := floorstate.NewStore()
	gateway := snapshot.NewGateway(cfg.Snapshot, catalog, logger)

	floor, err := gateway.Load(clk.Now())
	if err != nil {
		require.True(t,
			infra.IsKind(err, infra.KindNotFound) || infra.IsKind(err, infra.KindCorruptSnapshot),
			"unexpected snapshot load failure: %v", err)
		floor = floorstate.NewFloor(nil, revenue.NewState())
	}
	require.NoError(t, floor.Seed(cfg.Floor, catalog))
	store.Replace(floor)

	sessionCommands := commands.NewSessionCommands(store, clk)
	floorQueries := queries.NewFloorQueries(store, catalog, clk)

	engine := gin.New()
	handler.NewRouter(engine, cfg,
		api.NewFloorHandler(floorQueries),
		api.NewSessionHandler(sessionCommands))

	return &Env{
		Router:  engine,
		Store:   store,
		Gateway: gateway,
		Ticker:  ticker.New(store, gateway, clk, cfg.Snapshot, logger),
		Clock:   clk,
		Config:  cfg,
	}
}

// SharedSuite carries one Env per test with its own snapshot file.
type SharedSuite struct {
	suite.Suite
	Env *Env
}

func (s *SharedSuite) SetupTest() {
	path := filepath.Join(s.T().TempDir(), "playhall-state.json")
	s.Env = SetupEnv(s.T(), path, time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC))
}
