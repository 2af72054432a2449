package repositories

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/logger"
)

// minioAPI is the subset of *minio.Client used by MinioCatalogRepository.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
}

// minioClientWrapper adapts *minio.Client to minioAPI.
type minioClientWrapper struct{ c *minio.Client }

func (w minioClientWrapper) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return w.c.BucketExists(ctx, bucketName)
}

func (w minioClientWrapper) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return w.c.MakeBucket(ctx, bucketName, opts)
}

func (w minioClientWrapper) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return w.c.PutObject(ctx, bucketName, objectName, reader, objectSize, opts)
}

func (w minioClientWrapper) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	obj, err := w.c.GetObject(ctx, bucketName, objectName, opts)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// MinioCatalogRepository stores catalogs as objects in a MinIO bucket
type MinioCatalogRepository struct {
	api    minioAPI
	bucket string
}

// NewMinioCatalogRepository creates a repository backed by a real MinIO client.
func NewMinioCatalogRepository(ctx context.Context, client *minio.Client, bucket string) (*MinioCatalogRepository, error) {
	return newMinioCatalogRepository(ctx, minioClientWrapper{c: client}, bucket)
}

func newMinioCatalogRepository(ctx context.Context, api minioAPI, bucket string) (*MinioCatalogRepository, error) {
	r := &MinioCatalogRepository{api: api, bucket: bucket}

	exists, err := api.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := api.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", bucket, err)
		}
		logger.Log.Infow("catalog bucket created", "bucket", bucket)
	}

	return r, nil
}

// Read returns the raw contents of the named catalog object
func (r *MinioCatalogRepository) Read(ctx context.Context, name string) ([]byte, error) {
	data, err := r.read(ctx, name)

	logger.Log.Infow("catalog read",
		"bucket", r.bucket,
		"object", name,
		"size", len(data),
		"error", err,
	)

	if err != nil && minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return nil, ErrCatalogNotFound
	}
	return data, err
}

func (r *MinioCatalogRepository) read(ctx context.Context, name string) ([]byte, error) {
	obj, err := r.api.GetObject(ctx, r.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	return io.ReadAll(obj)
}

// Write replaces the named catalog object
func (r *MinioCatalogRepository) Write(ctx context.Context, name string, data []byte) error {
	_, err := r.api.PutObject(ctx, r.bucket, name, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json; charset=utf-8"})

	logger.Log.Infow("catalog write",
		"bucket", r.bucket,
		"object", name,
		"size", len(data),
		"error", err,
	)

	return err
}
