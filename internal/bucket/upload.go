package bucket

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jekabolt/sheel/internal/entity"
	"github.com/minio/minio-go/v7"
)

// ErrObjectExists is returned by a non-upsert upload to a taken path.
var ErrObjectExists = errors.New("object already exists")

const cacheControl = "max-age=31536000"

// Upload stores data under path, publicly readable, and returns its URL.
func (b *Bucket) Upload(ctx context.Context, data []byte, path string, opts entity.UploadOptions) (string, error) {
	key := b.constructFullPath(path)

	if !opts.Upsert {
		exists, err := b.exists(ctx, key)
		if err != nil {
			return "", err
		}
		if exists {
			return "", fmt.Errorf("%w: %s", ErrObjectExists, key)
		}
	}

	contentType := opts.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	r := bytes.NewReader(data)
	userMetaData := map[string]string{"x-amz-acl": "public-read"}

	_, err := b.Client.PutObject(ctx, b.Config.S3BucketName, key, r,
		int64(r.Len()), minio.PutObjectOptions{
			ContentType:  contentType,
			CacheControl: cacheControl,
			UserMetadata: userMetaData,
		},
	)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't upload object",
			slog.String("key", key),
			slog.String("err", err.Error()),
		)
		return "", fmt.Errorf("error putting object: %w", err)
	}

	return b.getCDNURL(key), nil
}

func (b *Bucket) exists(ctx context.Context, key string) (bool, error) {
	_, err := b.Client.StatObject(ctx, b.Config.S3BucketName, key, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return false, nil
	}
	return false, fmt.Errorf("can't stat object %s: %w", key, err)
}
