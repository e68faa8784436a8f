package config

import (
	"os"
	"strconv"
	"strings"

	"image-resizer/internal/domain/entities"
	"image-resizer/pkg/errors"

	"github.com/joho/godotenv"
)

const (
	DriverS3    = "s3"
	DriverLocal = "local"
)

type Config struct {
	Resize  ResizeConfig
	Storage StorageConfig
	Redis   RedisConfig
	Server  ServerConfig
	Log     LogConfig
}

type ResizeConfig struct {
	// Resolutions is built once here and handed to the resize service; nothing mutates it later.
	Resolutions    entities.ResolutionSpec
	RootPrefix     string
	OriginalMarker string
	Concurrency    int
	MaxSourceBytes int64
	JPEGQuality    int
}

type StorageConfig struct {
	Driver   string
	Bucket   string
	Region   string
	Endpoint string // MinIO / LocalStack, path-style addressing
	LocalDir string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Queue    string
	Workers  int
}

type ServerConfig struct {
	Port string
	Host string
}

type LogConfig struct {
	Level  string
	Format string // json | console
}

// LoadDotEnv loads path into the environment when it exists. Variables already set win.
func LoadDotEnv(path string) bool {
	return godotenv.Load(path) == nil
}

func LoadConfig() (*Config, error) {
	concurrency, err := getEnvAsInt("RESIZE_CONCURRENCY", 1)
	if err != nil {
		return nil, err
	}
	if concurrency < 1 {
		return nil, errors.ErrConfig("RESIZE_CONCURRENCY", strconv.ErrRange)
	}

	maxSource, err := getEnvAsInt64("RESIZE_MAX_SOURCE_BYTES", 64*1024*1024) // 64MB
	if err != nil {
		return nil, err
	}

	quality, err := getEnvAsInt("RESIZE_JPEG_QUALITY", 95)
	if err != nil {
		return nil, err
	}
	if quality < 1 || quality > 100 {
		return nil, errors.ErrConfig("RESIZE_JPEG_QUALITY", strconv.ErrRange)
	}

	redisDB, err := getEnvAsInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	workers, err := getEnvAsInt("WORKER_COUNT", 2)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		return nil, errors.ErrConfig("WORKER_COUNT", strconv.ErrRange)
	}

	config := &Config{
		Resize: ResizeConfig{
			Resolutions:    entities.LoadResolutions(os.Getenv("ResizeResolutions")),
			RootPrefix:     strings.Trim(getEnv("RESIZE_ROOT_PREFIX", "images"), "/"),
			OriginalMarker: getEnv("RESIZE_ORIGINAL_MARKER", "original-"),
			Concurrency:    concurrency,
			MaxSourceBytes: maxSource,
			JPEGQuality:    quality,
		},
		Storage: StorageConfig{
			Driver:   strings.ToLower(getEnv("STORAGE_DRIVER", DriverS3)),
			Bucket:   os.Getenv("STORAGE_BUCKET"),
			Region:   getEnv("AWS_REGION", "eu-central-1"),
			Endpoint: os.Getenv("STORAGE_ENDPOINT"),
			LocalDir: getEnv("STORAGE_LOCAL_DIR", "storage"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
			Queue:    getEnv("RESIZE_QUEUE", "resize_events"),
			Workers:  workers,
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "3000"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverS3:
		// the bucket is the storage connection; without it nothing can be read or written
		if c.Storage.Bucket == "" {
			return errors.ErrConfig("STORAGE_BUCKET", errMissing)
		}
	case DriverLocal:
		if c.Storage.LocalDir == "" {
			return errors.ErrConfig("STORAGE_LOCAL_DIR", errMissing)
		}
	default:
		return errors.ErrConfig("STORAGE_DRIVER", errUnknownDriver)
	}

	if c.Resize.RootPrefix == "" {
		return errors.ErrConfig("RESIZE_ROOT_PREFIX", errMissing)
	}
	if c.Resize.OriginalMarker == "" {
		return errors.ErrConfig("RESIZE_ORIGINAL_MARKER", errMissing)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.ErrConfig(key, err)
	}
	return parsed, nil
}

func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, errors.ErrConfig(key, err)
	}
	return parsed, nil
}
