// Package storage persists case document binaries in object storage.
// Only metadata lives in PostgreSQL; the bytes live here.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/andeslegal/cobranza/pkg/config"
)

// presignedExpiry is how long a download link stays valid. Links are
// generated per request, so a short window is enough.
const presignedExpiry = 24 * time.Hour

// MinioService stores and retrieves case documents.
type MinioService struct {
	client *minio.Client
	bucket string
	useSSL bool
}

// NewMinioService builds the client from configuration. It does not touch
// the network; call EnsureBucket during startup for that.
func NewMinioService(cfg config.MinioConfig) (*MinioService, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinioService{
		client: client,
		bucket: cfg.Bucket,
		useSSL: cfg.UseSSL,
	}, nil
}

// EnsureBucket creates the bucket if it doesn't exist.
func (s *MinioService) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// ObjectKey builds the storage key for a case document.
// Layout: {case_id}/{document_id}/{name}
func ObjectKey(caseID, documentID, name string) string {
	return caseID + "/" + documentID + "/" + name
}

// Upload stores a document and returns nothing; the caller already chose
// the object key and records it in the document metadata.
func (s *MinioService) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

// UploadBytes stores an in-memory document, typically a rendered PDF.
func (s *MinioService) UploadBytes(ctx context.Context, key string, data []byte, contentType string) error {
	return s.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), contentType)
}

// Download fetches the full object into memory. Case documents are small
// court PDFs, never bulk data.
func (s *MinioService) Download(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read object: %w", err)
	}
	return data, nil
}

// PresignedURL generates a temporary download link for the object.
func (s *MinioService) PresignedURL(ctx context.Context, key string) (string, error) {
	url, err := s.client.PresignedGetObject(ctx, s.bucket, key, presignedExpiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return url.String(), nil
}

// Delete removes the object.
func (s *MinioService) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}
