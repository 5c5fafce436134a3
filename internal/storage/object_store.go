package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/scouter-app/receipt-pipeline/internal/common"
)

// ObjectStore is the object storage collaborator: durable byte storage
// addressed by an opaque reference (the object key).
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
}

// MinioStore implements ObjectStore for MinIO/S3 compatible storage.
type MinioStore struct {
	client *minio.Client
	bucket string
	logger *slog.Logger
}

// NewMinioStore connects to the endpoint and ensures the bucket exists.
func NewMinioStore(endpoint, accessKey, secretKey, bucket string, useSSL bool, logger *slog.Logger) (*MinioStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
		logger.Info("created storage bucket", "bucket", bucket)
	}
	return &MinioStore{client: client, bucket: bucket, logger: logger}, nil
}

// Put uploads an object. Failures are transient from the pipeline's
// point of view: the store itself being unreachable is retryable.
func (m *MinioStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		m.logger.Error("object put failed", "bucket", m.bucket, "key", key, "error", err)
		return common.Unavailable("object storage", err)
	}
	return nil
}

// Get downloads an object by reference.
func (m *MinioStore) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, common.Unavailable("object storage", err)
	}
	defer func() {
		if cerr := obj.Close(); cerr != nil {
			m.logger.Warn("object close error", "key", key, "error", cerr)
		}
	}()
	data, err := io.ReadAll(obj)
	if err != nil {
		var resp minio.ErrorResponse
		if errResp := minio.ToErrorResponse(err); errResp.Code != "" {
			resp = errResp
		}
		if resp.Code == "NoSuchKey" {
			return nil, common.Rejected("object storage", fmt.Errorf("no object at %q", key))
		}
		m.logger.Error("object get failed", "bucket", m.bucket, "key", key, "error", err)
		return nil, common.Unavailable("object storage", err)
	}
	return data, nil
}
