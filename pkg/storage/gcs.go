package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/dealscope/dealscope-engine/pkg/apperrors"
)

// GCSStore is a BlobStore backed by a Google Cloud Storage bucket.
type GCSStore struct {
	client *gcs.Client
	bucket string
	logger *zap.Logger
}

// NewGCSStore connects to GCS and verifies the bucket is reachable.
// credentialsJSON is optional; when empty, application default credentials
// are used.
func NewGCSStore(ctx context.Context, bucket, credentialsJSON string, logger *zap.Logger) (*GCSStore, error) {
	var opts []option.ClientOption
	if credentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	if _, err := client.Bucket(bucket).Attrs(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("bucket %q not accessible: %w", bucket, err)
	}
	return &GCSStore{
		client: client,
		bucket: bucket,
		logger: logger.Named("storage"),
	}, nil
}

func (s *GCSStore) Upload(ctx context.Context, objectName string, data []byte, contentType string) error {
	wc := s.client.Bucket(s.bucket).Object(objectName).NewWriter(ctx)
	wc.ContentType = contentType
	if _, err := wc.Write(data); err != nil {
		wc.Close()
		return fmt.Errorf("%w: writing %s: %v", apperrors.ErrStorage, objectName, err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("%w: finalizing %s: %v", apperrors.ErrStorage, objectName, err)
	}
	s.logger.Debug("object uploaded",
		zap.String("object", objectName),
		zap.Int("bytes", len(data)))
	return nil
}

func (s *GCSStore) Download(ctx context.Context, objectName string) ([]byte, error) {
	rc, err := s.client.Bucket(s.bucket).Object(objectName).NewReader(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return nil, fmt.Errorf("%w: object %s", apperrors.ErrNotFound, objectName)
		}
		return nil, fmt.Errorf("%w: opening %s: %v", apperrors.ErrStorage, objectName, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", apperrors.ErrStorage, objectName, err)
	}
	return data, nil
}

func (s *GCSStore) PublicURL(objectName string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, objectName)
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
