package main //worker

import (
	"context"

	"image-resizer/internal/app"
	"image-resizer/internal/infrastructure/queue"
	"image-resizer/internal/pkg/config"
	"image-resizer/internal/usecases"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	envLoaded := config.LoadDotEnv(".env")

	fx.New(
		app.Module,
		fx.Provide(newRedisClient),
		fx.Invoke(func(log *zap.Logger) {
			if !envLoaded {
				log.Debug("no .env file found, using process environment")
			}
		}),
		fx.Invoke(registerListener),
	).Run()
}

func newRedisClient(lc fx.Lifecycle, cfg *config.Config) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return rdb.Close() },
	})
	return rdb
}

func registerListener(lc fx.Lifecycle, rdb *redis.Client, cfg *config.Config, triggerService usecases.TriggerService, log *zap.Logger) {
	pool := queue.NewWorkerPool(cfg.Redis.Workers, triggerService, log.Named("worker"))
	listener := queue.NewListener(rdb, cfg.Redis.Queue, pool, log)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			if err := rdb.Ping(startCtx).Err(); err != nil {
				return err
			}
			go func() {
				defer close(done)
				if err := listener.Run(ctx); err != nil && ctx.Err() == nil {
					log.Error("listener stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			pool.Drain()
			return nil
		},
	})
}
