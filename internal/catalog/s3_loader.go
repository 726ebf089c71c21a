package catalog

import (
	"context"
	"fmt"
	"io"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// s3Loader implements Loader for reading catalogue documents from AWS S3.
type s3Loader struct {
	client *s3.Client
	bucket string
	logger zerolog.Logger
}

// NewS3Loader creates a new S3-based catalogue loader.
func NewS3Loader(ctx context.Context, bucket, region string, logger zerolog.Logger) (Loader, error) {
	logger = logger.With().Str("component", "s3-catalog-loader").Logger()

	// Load AWS configuration
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 catalogue loader initialised")

	return &s3Loader{
		client: client,
		bucket: bucket,
		logger: logger,
	}, nil
}

// Load reads a JSON catalogue document from S3. The key parameter is
// the full S3 object key.
func (l *s3Loader) Load(ctx context.Context, key string) ([]model.Product, error) {
	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", key).
		Msg("loading catalogue from S3")

	result, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", key).
			Msg("failed to get object from S3")
		return nil, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", l.bucket, key, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", key).
			Msg("failed to read S3 object body")
		return nil, fmt.Errorf("failed to read S3 object %s: %w", key, err)
	}

	products, err := decodeCatalog(data)
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", key).
			Msg("failed to decode catalogue from S3")
		return nil, fmt.Errorf("failed to decode catalogue from S3 %s: %w", key, err)
	}

	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", key).
		Int("products_loaded", len(products)).
		Msg("catalogue loaded successfully from S3")

	return products, nil
}

// fallbackLoader tries S3 first, then falls back to the local file
// system so the service can still boot without S3 access.
type fallbackLoader struct {
	s3Loader   Loader
	fileLoader Loader
	s3Key      string
	logger     zerolog.Logger
}

// NewFallbackLoader creates a loader that tries S3 first, then falls
// back to the local file system.
func NewFallbackLoader(s3Loader, fileLoader Loader, s3Key string, logger zerolog.Logger) Loader {
	return &fallbackLoader{
		s3Loader:   s3Loader,
		fileLoader: fileLoader,
		s3Key:      s3Key,
		logger:     logger.With().Str("component", "fallback-catalog-loader").Logger(),
	}
}

// Load attempts the S3 key first and falls back to reading filePath
// locally on any S3 failure.
func (l *fallbackLoader) Load(ctx context.Context, filePath string) ([]model.Product, error) {
	if l.s3Loader != nil {
		products, err := l.s3Loader.Load(ctx, l.s3Key)
		if err == nil {
			return products, nil
		}

		l.logger.Warn().
			Err(err).
			Str("s3_key", l.s3Key).
			Str("local_fallback", filePath).
			Msg("failed to load catalogue from S3, falling back to local file system")
	}

	return l.fileLoader.Load(ctx, filePath)
}
