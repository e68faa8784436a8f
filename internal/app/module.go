package app

import (
	"context"

	"image-resizer/internal/domain/repositories"
	"image-resizer/internal/infrastructure/processor"
	"image-resizer/internal/infrastructure/storage"
	"image-resizer/internal/pkg/config"
	"image-resizer/internal/pkg/logger"
	"image-resizer/internal/usecases"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Module wires everything the delivery adapters share.
var Module = fx.Options(
	fx.Provide(
		config.LoadConfig,
		NewLogger,
		NewStorage,
		NewResizer,
		NewResizeService,
		NewTriggerService,
	),
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log.Named("fx")}
	}),
)

func NewLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			_ = log.Sync()
			return nil
		},
	})
	return log, nil
}

func NewStorage(cfg *config.Config, log *zap.Logger) (repositories.StorageStrategy, error) {
	switch cfg.Storage.Driver {
	case config.DriverLocal:
		log.Info("using local storage", zap.String("dir", cfg.Storage.LocalDir))
		return storage.NewLocalStorage(cfg.Storage.LocalDir), nil
	default:
		log.Info("using S3 storage",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("region", cfg.Storage.Region),
			zap.String("endpoint", cfg.Storage.Endpoint),
		)
		s3Storage, err := storage.NewS3Storage(context.Background(), cfg.Storage.Bucket, cfg.Storage.Region, cfg.Storage.Endpoint)
		if err != nil {
			return nil, err
		}
		return s3Storage, nil
	}
}

func NewResizer(cfg *config.Config) repositories.Resizer {
	return processor.NewImageProcessor(cfg.Resize.JPEGQuality)
}

func NewResizeService(
	resizer repositories.Resizer,
	store repositories.StorageStrategy,
	cfg *config.Config,
	log *zap.Logger,
) usecases.ResizeService {
	log.Info("resolutions loaded",
		zap.String("resolutions", cfg.Resize.Resolutions.String()),
		zap.Int("count", len(cfg.Resize.Resolutions)),
	)
	return usecases.NewResizeService(resizer, store, usecases.ResizeOptions{
		Resolutions: cfg.Resize.Resolutions,
		RootPrefix:  cfg.Resize.RootPrefix,
		Concurrency: cfg.Resize.Concurrency,
	}, log)
}

func NewTriggerService(
	store repositories.StorageStrategy,
	resize usecases.ResizeService,
	cfg *config.Config,
	log *zap.Logger,
) usecases.TriggerService {
	bucket := ""
	if cfg.Storage.Driver == config.DriverS3 {
		bucket = cfg.Storage.Bucket
	}
	return usecases.NewTriggerService(store, resize, usecases.TriggerOptions{
		Bucket:         bucket,
		RootPrefix:     cfg.Resize.RootPrefix,
		OriginalMarker: cfg.Resize.OriginalMarker,
		MaxSourceBytes: cfg.Resize.MaxSourceBytes,
	}, log)
}
