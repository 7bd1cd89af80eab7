package http

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/Alijeyrad/sorriso_backend/config"
	"github.com/Alijeyrad/sorriso_backend/internal/api/http/router"
	"github.com/Alijeyrad/sorriso_backend/internal/app"
)

// NewFxApp wires infrastructure, services, router and server.
func NewFxApp(cfg *config.Config, stopTimeout time.Duration) *fx.App {
	return fx.New(
		fx.Supply(cfg),
		app.InfraModule,
		app.ServiceModule,
		router.Module,
		Module,

		// Requesting *fiber.App forces NewServer and its OnStart hook.
		fx.Invoke(func(*fiber.App) {}),

		fx.StopTimeout(stopTimeout),
		fx.WithLogger(func() fxevent.Logger { return fxevent.NopLogger }),
	)
}
