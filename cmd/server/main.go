package main

import (
	"context"
	"fmt"
	"net"

	"image-resizer/internal/app"
	"image-resizer/internal/delivery/http/routers"
	"image-resizer/internal/pkg/config"
	"image-resizer/internal/usecases"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	envLoaded := config.LoadDotEnv(".env")

	fx.New(
		app.Module,
		fx.Provide(newFiberApp),
		fx.Invoke(func(log *zap.Logger) {
			if !envLoaded {
				log.Debug("no .env file found, using process environment")
			}
		}),
		fx.Invoke(registerServer),
	).Run()
}

func newFiberApp() *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		// an event document is small; the originals are fetched from storage
		BodyLimit:             4 * 1024 * 1024,
		DisableStartupMessage: true,
	})

	// Middleware
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())
	return fiberApp
}

func registerServer(lc fx.Lifecycle, fiberApp *fiber.App, cfg *config.Config, triggerService usecases.TriggerService, log *zap.Logger) {
	routers.SetupEventRoutes(fiberApp, triggerService, log)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", addr, err)
			}
			log.Info("server starting", zap.String("addr", addr))
			go func() {
				if err := fiberApp.Listener(ln); err != nil {
					log.Error("server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down server")
			return fiberApp.ShutdownWithContext(ctx)
		},
	})
}
