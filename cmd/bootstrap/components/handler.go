package components

import (
	"shelter-scheduler/internal/handler"
	"shelter-scheduler/internal/handler/api"
	reqdto "shelter-scheduler/internal/handler/dto/request"
	"shelter-scheduler/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSlotHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(
		reqdto.RegisterValidators,
		handler.NewRouter,
	),
)
