package store

import (
	"bytes"
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"
)

// S3Store persists config blobs in an S3-compatible bucket.
type S3Store struct {
	client *s3.Client
	bucket string
}

// S3Config represents S3 store configuration.
type S3Config struct {
	Bucket   string
	Region   string
	Endpoint string // Optional S3-compatible endpoint (MinIO etc.)
}

// NewS3Store creates an S3-backed ObjectStore using the default AWS
// credential chain.
func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("bucket is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	zlog.Info().Msgf("object store ready: bucket=%s region=%s", cfg.Bucket, cfg.Region)

	return &S3Store{client: client, bucket: cfg.Bucket}, nil
}

// Get downloads the whole object stored under key.
func (s *S3Store) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, errors.Wrapf(ErrNotFound, "key %s", key)
		}
		return nil, errors.Wrapf(err, "failed to get object %s", key)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read object %s", key)
	}
	return data, nil
}

// Put uploads data as the whole value of key.
func (s *S3Store) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to put object %s", key)
	}
	return nil
}
