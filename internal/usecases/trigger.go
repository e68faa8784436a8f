package usecases

import (
	"context"
	stderrors "errors"

	"image-resizer/internal/domain/entities"
	"image-resizer/internal/domain/repositories"
	"image-resizer/internal/pkg/fileutils"
	"image-resizer/pkg/errors"
	"image-resizer/pkg/file"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// TriggerService turns object-created notifications into resize runs.
type TriggerService interface {
	// HandleS3Event processes every record that names an original. Only context
	// cancellation is returned; other failures end up in the log and the reports.
	HandleS3Event(ctx context.Context, event events.S3Event) ([]*entities.Report, error)
}

type TriggerOptions struct {
	Bucket         string // records from other buckets are ignored; empty accepts any
	RootPrefix     string
	OriginalMarker string
	MaxSourceBytes int64
}

type triggerService struct {
	storage repositories.StorageStrategy
	resize  ResizeService
	opts    TriggerOptions
	log     *zap.Logger
}

func NewTriggerService(
	storage repositories.StorageStrategy,
	resize ResizeService,
	opts TriggerOptions,
	log *zap.Logger,
) TriggerService {
	return &triggerService{
		storage: storage,
		resize:  resize,
		opts:    opts,
		log:     log.Named("trigger"),
	}
}

func (s *triggerService) HandleS3Event(ctx context.Context, event events.S3Event) ([]*entities.Report, error) {
	reports := make([]*entities.Report, 0, len(event.Records))

	for _, record := range event.Records {
		if err := ctx.Err(); err != nil {
			return reports, err
		}

		report, ok := s.handleRecord(ctx, record)
		if ok {
			reports = append(reports, report)
		}
	}

	return reports, ctx.Err()
}

func (s *triggerService) handleRecord(ctx context.Context, record events.S3EventRecord) (*entities.Report, bool) {
	bucket := record.S3.Bucket.Name
	if s.opts.Bucket != "" && bucket != "" && bucket != s.opts.Bucket {
		s.log.Warn("event from unexpected bucket, ignoring",
			zap.String("bucket", bucket),
			zap.String("expected", s.opts.Bucket),
		)
		return nil, false
	}

	key, err := file.UnescapeEventKey(record.S3.Object.Key)
	if err != nil {
		s.log.Warn("undecodable object key", zap.String("key", record.S3.Object.Key), zap.Error(err))
		return nil, false
	}

	src, ok := file.ParseSourceKey(key, s.opts.RootPrefix, s.opts.OriginalMarker)
	if !ok {
		s.log.Debug("key is not an original, ignoring", zap.String("key", key))
		return nil, false
	}

	if !file.IsImageFile(src.Name) {
		s.log.Info("unsupported image extension, ignoring", zap.String("key", key))
		return &entities.Report{
			Source:    src.Name,
			Subfolder: src.Subfolder,
			Skipped:   true,
			Reason:    "unsupported image extension",
		}, true
	}

	data, err := s.download(ctx, key)
	if err != nil {
		s.log.Error("error reading original", zap.String("key", key), zap.Error(err))
		return &entities.Report{
			Source:    src.Name,
			Subfolder: src.Subfolder,
			Skipped:   true,
			Reason:    err.Error(),
		}, true
	}

	s.log.Info("processing original",
		zap.String("source", src.Name),
		zap.String("subfolder", src.Subfolder),
		zap.Int("bytes", len(data)),
	)

	return s.resize.Process(ctx, entities.SourceAsset{
		Name:      src.Name,
		Subfolder: src.Subfolder,
		Data:      data,
	}), true
}

func (s *triggerService) download(ctx context.Context, key string) ([]byte, error) {
	body, size, err := s.storage.Download(ctx, key)
	if err != nil {
		return nil, errors.ErrDownload(err)
	}
	defer body.Close()

	if s.opts.MaxSourceBytes > 0 && size > s.opts.MaxSourceBytes {
		return nil, errors.ErrSourceTooLarge(size, s.opts.MaxSourceBytes)
	}

	data, err := fileutils.ReadLimited(body, s.opts.MaxSourceBytes, size)
	if stderrors.Is(err, fileutils.ErrTooLarge) {
		return nil, errors.ErrSourceTooLarge(s.opts.MaxSourceBytes+1, s.opts.MaxSourceBytes)
	}
	if err != nil {
		return nil, errors.ErrDownload(err)
	}
	return data, nil
}
