package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"

	"github.com/careerpath/webapp/models"
)

// maxSeedBytes bounds the catalog seed object
const maxSeedBytes = 8 << 20

// ObjectReader opens a Cloud Storage object
type ObjectReader interface {
	Open(ctx context.Context, bucket, object string) (io.ReadCloser, error)
}

// CloudStorageClient wraps Google Cloud Storage reads
type CloudStorageClient struct {
	client *storage.Client
}

// NewCloudStorageClient creates a new Cloud Storage client
func NewCloudStorageClient(ctx context.Context) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}

	return &CloudStorageClient{client: client}, nil
}

// Close closes the Cloud Storage client
func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

// Open returns a reader for bucket/object
func (c *CloudStorageClient) Open(ctx context.Context, bucket, object string) (io.ReadCloser, error) {
	rc, err := c.client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader: %w", err)
	}
	return rc, nil
}

// ParseObjectURL splits gs://bucket/path/to/object
func ParseObjectURL(raw string) (bucket, object string, err error) {
	rest, ok := strings.CutPrefix(raw, "gs://")
	if !ok {
		return "", "", fmt.Errorf("invalid object URL %q: want gs://bucket/object", raw)
	}
	bucket, object, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || object == "" {
		return "", "", fmt.Errorf("invalid object URL %q: want gs://bucket/object", raw)
	}
	return bucket, object, nil
}

// LoadSeed reads a JSON catalog from a gs:// URL
func LoadSeed(ctx context.Context, reader ObjectReader, objectURL string) ([]models.CareerListing, error) {
	bucket, object, err := ParseObjectURL(objectURL)
	if err != nil {
		return nil, err
	}

	rc, err := reader.Open(ctx, bucket, object)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxSeedBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog seed: %w", err)
	}
	return ParseCatalog(data)
}
