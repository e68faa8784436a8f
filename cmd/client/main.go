package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"image-resizer/internal/app"
	"image-resizer/internal/domain/repositories"
	"image-resizer/internal/infrastructure/queue"
	"image-resizer/internal/pkg/config"
	"image-resizer/pkg/constants"
	"image-resizer/pkg/file"
	"image-resizer/pkg/helper"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// client stores a local image as an original and queues the event the worker consumes.
func main() {
	filePath := flag.String("file", "", "image to upload (required)")
	subfolder := flag.String("subfolder", "events", "subfolder under the root prefix")
	flag.Parse()

	if *filePath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if !file.IsImageFile(*filePath) {
		log.Fatalf("unsupported image extension: %s", filepath.Ext(*filePath))
	}

	config.LoadDotEnv(".env")

	var (
		cfg   *config.Config
		store repositories.StorageStrategy
		zlog  *zap.Logger
	)
	fxApp := fx.New(app.Module, fx.NopLogger, fx.Populate(&cfg, &store, &zlog))
	if err := fxApp.Err(); err != nil {
		log.Fatalf("startup failed: %v", err)
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("dosya okunamadı: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	name := cfg.Resize.OriginalMarker + uuid.NewString() + filepath.Ext(*filePath)
	folder := file.VariantFolder(cfg.Resize.RootPrefix, *subfolder)
	location, err := store.Upload(ctx, bytes.NewReader(data), map[string]string{
		constants.MetaFilename:    name,
		constants.MetaFolder:      folder,
		constants.MetaContentType: helper.GetMimeTypeFromExtension(*filePath),
	})
	if err != nil {
		log.Fatalf("upload failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	defer rdb.Close()

	listener := queue.NewListener(rdb, cfg.Redis.Queue, nil, zlog)
	job := queue.NewObjectCreatedJob(cfg.Storage.Bucket, file.MakeKey(folder, name), int64(len(data)))
	if err := listener.Enqueue(ctx, job); err != nil {
		log.Fatalf("enqueue failed: %v", err)
	}

	fmt.Printf("stored %s\nqueued on %s\n", location, cfg.Redis.Queue)
}
