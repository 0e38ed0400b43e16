// Package storage provides presigned-URL access to the S3-compatible bucket
// holding post draft images.
package storage

import (
	"context"
	"time"
)

// ServiceConfig holds the configuration required to connect to the storage service.
type ServiceConfig struct {
	S3BucketName      string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
}

// ImageStore defines the public interface for draft image storage.
type ImageStore interface {
	// PresignUpload generates a pre-signed URL for uploading an image.
	PresignUpload(
		ctx context.Context,
		key string,
		mimeType string,
		fileSize int64,
		duration time.Duration,
	) (string, error)

	// PresignDownload generates a pre-signed URL for viewing an image.
	PresignDownload(ctx context.Context, key string, duration time.Duration) (string, error)

	// Delete removes the image specified by the given key.
	Delete(ctx context.Context, key string) error

	// ObjectMetadata retrieves the stored object's content type and length.
	ObjectMetadata(ctx context.Context, key string) (map[string]string, error)
}

// NewImageStore is the factory function for ImageStore.
// Only S3-compatible backends are supported.
func NewImageStore(cfg ServiceConfig) (ImageStore, error) {
	return newS3Client(cfg)
}
