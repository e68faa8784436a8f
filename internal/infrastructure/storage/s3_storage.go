package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"image-resizer/pkg/constants"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the subset of *s3.Client used here.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

type S3Storage struct {
	client     S3API
	bucketName string
	region     string
	endpoint   string
}

// NewS3Storage loads the default AWS credential chain. A non-empty endpoint switches to
// path-style addressing against that URL (MinIO, LocalStack).
func NewS3Storage(ctx context.Context, bucketName, region, endpoint string) (*S3Storage, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("AWS config yüklenemedi: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return NewS3StorageWithClient(client, bucketName, region, endpoint), nil
}

func NewS3StorageWithClient(client S3API, bucketName, region, endpoint string) *S3Storage {
	return &S3Storage{
		client:     client,
		bucketName: bucketName,
		region:     region,
		endpoint:   endpoint,
	}
}

func (s *S3Storage) Bucket() string {
	return s.bucketName
}

func (s *S3Storage) Upload(ctx context.Context, body io.Reader, metadata map[string]string) (string, error) {
	key := metadata[constants.MetaFilename]
	if key == "" {
		return "", fmt.Errorf("metadata %q is required", constants.MetaFilename)
	}
	if folder, ok := metadata[constants.MetaFolder]; ok && folder != "" {
		key = folder + "/" + key
	}

	input := &s3.PutObjectInput{
		Bucket:   aws.String(s.bucketName),
		Key:      aws.String(key),
		Body:     body,
		Metadata: userMetadata(metadata),
	}
	if ct := metadata[constants.MetaContentType]; ct != "" {
		input.ContentType = aws.String(ct)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("S3 upload hatası: %w", err)
	}

	return s.objectURL(key), nil
}

// Download returns the object body and its length. The caller closes the body.
func (s *S3Storage) Download(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("S3 download hatası: %w", err)
	}
	return resp.Body, aws.ToInt64(resp.ContentLength), nil
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	return err
}

func (s *S3Storage) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err == nil {
		return true, nil
	}
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return false, nil
	}
	return false, err
}

func (s *S3Storage) objectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucketName, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucketName, s.region, key)
}

// userMetadata drops the keys that already map onto request fields.
func userMetadata(metadata map[string]string) map[string]string {
	out := make(map[string]string, len(metadata))
	for k, v := range metadata {
		switch k {
		case constants.MetaFilename, constants.MetaFolder, constants.MetaContentType:
			continue
		}
		out[k] = v
	}
	return out
}
