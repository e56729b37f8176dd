package components

import (
	"playhall/internal/handler"
	"playhall/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewFloorHandler,
		api.NewSessionHandler,
	),
	fx.Invoke(handler.NewRouter),
)
