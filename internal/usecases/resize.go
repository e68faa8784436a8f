package usecases

import (
	"bytes"
	"context"

	"image-resizer/internal/domain/entities"
	"image-resizer/internal/domain/repositories"
	"image-resizer/pkg/constants"
	"image-resizer/pkg/errors"
	"image-resizer/pkg/file"
	"image-resizer/pkg/helper"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ResizeService interface {
	// Process never fails: per-resolution problems are logged and recorded on the report.
	Process(ctx context.Context, asset entities.SourceAsset) *entities.Report
}

type ResizeOptions struct {
	Resolutions entities.ResolutionSpec
	RootPrefix  string
	Concurrency int
}

type resizeService struct {
	resizer repositories.Resizer
	storage repositories.StorageStrategy
	opts    ResizeOptions
	log     *zap.Logger
}

func NewResizeService(
	resizer repositories.Resizer,
	storage repositories.StorageStrategy,
	opts ResizeOptions,
	log *zap.Logger,
) ResizeService {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	// own copy, so the caller cannot change the resolutions under a running service
	opts.Resolutions = append(entities.ResolutionSpec(nil), opts.Resolutions...)

	return &resizeService{
		resizer: resizer,
		storage: storage,
		opts:    opts,
		log:     log.Named("resize"),
	}
}

func (s *resizeService) Process(ctx context.Context, asset entities.SourceAsset) *entities.Report {
	report := &entities.Report{
		Source:    asset.Name,
		Subfolder: asset.Subfolder,
		Bytes:     len(asset.Data),
	}
	log := s.log.With(zap.String("source", asset.Name), zap.String("subfolder", asset.Subfolder))

	stem := asset.Stem()
	if !file.IsCanonicalID(stem) {
		log.Debug("stem is not a canonical id, skipping", zap.String("stem", stem))
		report.Skipped = true
		report.Reason = "stem is not a canonical id"
		return report
	}

	if len(s.opts.Resolutions) == 0 {
		log.Info("no resolutions configured, nothing to do")
		return report
	}

	report.Variants = make([]entities.Variant, len(s.opts.Resolutions))

	if s.opts.Concurrency == 1 {
		for i, res := range s.opts.Resolutions {
			report.Variants[i] = s.processOne(ctx, log, asset, stem, res)
		}
	} else {
		// tasks never return an error, so one failed size does not cancel the others
		var g errgroup.Group
		g.SetLimit(s.opts.Concurrency)
		for i, res := range s.opts.Resolutions {
			i, res := i, res
			g.Go(func() error {
				report.Variants[i] = s.processOne(ctx, log, asset, stem, res)
				return nil
			})
		}
		_ = g.Wait()
	}

	if err := report.Err(); err != nil {
		log.Warn("some variants failed",
			zap.Int("succeeded", report.Succeeded()),
			zap.Int("failed", report.Failed()),
			zap.Error(err),
		)
	} else {
		log.Info("variants stored", zap.Int("count", report.Succeeded()))
	}
	return report
}

func (s *resizeService) processOne(ctx context.Context, log *zap.Logger, asset entities.SourceAsset, stem string, res entities.Resolution) entities.Variant {
	variant := entities.Variant{Resolution: res}
	log = log.With(zap.Int("width", res.Width), zap.Int("height", res.Height))

	// every size reads the original from the start
	data, err := s.resizer.Resize(ctx, bytes.NewReader(asset.Data), asset.Ext(), res)
	if err != nil {
		log.Error("error resizing image", zap.Error(err))
		variant.Err = err
		return variant
	}
	if len(data) == 0 {
		err := errors.ErrEmptyOutput()
		log.Error("error resizing image", zap.Error(err))
		variant.Err = err
		return variant
	}
	variant.Success = true
	variant.Size = len(data)

	folder := file.VariantFolder(s.opts.RootPrefix, asset.Subfolder)
	name := file.VariantName(stem, res.Width, res.Height, asset.Ext())
	variant.Key = file.MakeKey(folder, name)

	metadata := map[string]string{
		constants.MetaFilename:    name,
		constants.MetaFolder:      folder,
		constants.MetaContentType: helper.GetMimeTypeFromExtension(asset.Name),
		constants.MetaSource:      asset.Name,
		constants.MetaResolution:  res.String(),
	}

	location, err := s.storage.Upload(ctx, bytes.NewReader(data), metadata)
	if err != nil {
		uerr := errors.ErrUpload(err)
		log.Error("error uploading variant", zap.String("key", variant.Key), zap.Error(uerr))
		variant.Err = uerr
		return variant
	}

	variant.Uploaded = true
	variant.Location = location
	log.Debug("variant stored", zap.String("key", variant.Key), zap.Int("bytes", variant.Size))
	return variant
}
