package components

import (
	"context"

	"parkbuddy/internal/handler"
	"parkbuddy/internal/handler/api"
	"parkbuddy/internal/handler/middleware"
	"parkbuddy/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewParkingHandler,
		api.NewLotHandler,
		api.NewAdminHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(auth *api.AuthHandler, parking *api.ParkingHandler, lot *api.LotHandler, admin *api.AdminHandler) handler.Handlers {
	return handler.Handlers{Auth: auth, Parking: parking, Lot: lot, Admin: admin}
}

// NewRateLimiter ties the limiter janitor to the app lifecycle.
func NewRateLimiter(lc fx.Lifecycle, cfg config.Config) *middleware.RateLimiter {
	limiter := middleware.NewRateLimiter(cfg.RateLimit)
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			limiter.StartJanitor(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
	return limiter
}
