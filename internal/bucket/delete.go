package bucket

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/minio/minio-go/v7"
)

// toRemoveCh converts a string slice to a <-chan minio.ObjectInfo
func toRemoveCh(keys []string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	go func() {
		for _, key := range keys {
			ch <- minio.ObjectInfo{Key: key}
		}
		close(ch)
	}()
	return ch
}

// DeleteByURLs deletes objects by the URLs Upload returned.
// URLs not served by this bucket are skipped.
func (b *Bucket) DeleteByURLs(ctx context.Context, urls []string) error {
	keys := make([]string, 0, len(urls))
	for _, u := range urls {
		key, ok := b.keyFromURL(u)
		if !ok {
			slog.Default().DebugContext(ctx, "skip foreign object url",
				slog.String("url", u),
			)
			continue
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return nil
	}
	return b.DeleteFromBucket(ctx, keys)
}

// DeleteFromBucket deletes objects from the specified bucket.
func (b *Bucket) DeleteFromBucket(ctx context.Context, objectKeys []string) error {
	var errMsgs []string

	errorCh := b.Client.RemoveObjects(ctx, b.Config.S3BucketName, toRemoveCh(objectKeys), minio.RemoveObjectsOptions{})

	for dErr := range errorCh {
		slog.Default().ErrorContext(ctx, "failed to delete object from s3 bucket",
			slog.String("object_key", dErr.ObjectName),
			slog.String("err", dErr.Err.Error()),
		)
		errMsgs = append(errMsgs, dErr.Err.Error())
	}

	if len(errMsgs) > 0 {
		return fmt.Errorf("errors during deletion: %s", strings.Join(errMsgs, "; "))
	}

	return nil
}
