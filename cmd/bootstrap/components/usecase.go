package components

import (
	"playhall/internal/pkg/clock"
	"playhall/internal/usecase/commands"
	"playhall/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewSessionCommands,
		queries.NewFloorQueries,
	),
)
