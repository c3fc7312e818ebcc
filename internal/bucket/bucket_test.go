package bucket

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jekabolt/sheel/internal/entity"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		S3AccessKey:       "key",
		S3SecretAccessKey: "secret",
		S3Endpoint:        "fra1.digitaloceanspaces.com",
		S3BucketName:      "sheel",
		S3BucketLocation:  "fra-1",
		BaseFolder:        "sheel-com",
	}
}

func TestURLs(t *testing.T) {
	b, err := testConfig().New()
	require.NoError(t, err)

	key := b.constructFullPath("properties/owner-1/1700000000000-front.jpg")
	assert.Equal(t, "sheel-com/properties/owner-1/1700000000000-front.jpg", key)

	url := b.getCDNURL(key)
	assert.Equal(t, "https://sheel.fra1.digitaloceanspaces.com/sheel-com/properties/owner-1/1700000000000-front.jpg", url)

	got, ok := b.keyFromURL(url)
	assert.True(t, ok)
	assert.Equal(t, key, got)

	_, ok = b.keyFromURL("https://images.unsplash.com/photo.jpg")
	assert.False(t, ok)
}

func TestURLsWithSubdomain(t *testing.T) {
	c := testConfig()
	c.SubdomainEndpoint = "files.sheel.sa"
	c.BaseFolder = ""
	b, err := c.New()
	require.NoError(t, err)

	key := b.constructFullPath("/properties/a.png")
	assert.Equal(t, "properties/a.png", key)
	assert.Equal(t, "https://files.sheel.sa/properties/a.png", b.getCDNURL(key))
}

func TestDeleteByURLsSkipsForeign(t *testing.T) {
	b, err := testConfig().New()
	require.NoError(t, err)

	// nothing belongs to the bucket, so nothing is sent to the endpoint
	err = b.DeleteByURLs(context.Background(), []string{"https://example.com/a.jpg", ""})
	assert.NoError(t, err)
}

// bucketFromEnv returns a bucket backed by BUCKET_TEST_ENDPOINT, e.g. a
// local minio, or skips the test.
func bucketFromEnv(t *testing.T) *Bucket {
	t.Helper()
	endpoint := os.Getenv("BUCKET_TEST_ENDPOINT")
	if endpoint == "" {
		t.Skip("BUCKET_TEST_ENDPOINT is not set")
	}
	b, err := (&Config{
		S3AccessKey:       os.Getenv("BUCKET_TEST_ACCESS_KEY"),
		S3SecretAccessKey: os.Getenv("BUCKET_TEST_SECRET_KEY"),
		S3Endpoint:        endpoint,
		S3BucketName:      os.Getenv("BUCKET_TEST_NAME"),
		BaseFolder:        "test",
		Insecure:          os.Getenv("BUCKET_TEST_INSECURE") != "",
	}).New()
	require.NoError(t, err)
	return b
}

func TestUploadAndDelete(t *testing.T) {
	b := bucketFromEnv(t)
	ctx := context.Background()
	path := "properties/" + uuid.NewString() + "/photo.txt"
	data := []byte("not really a photo")

	url, err := b.Upload(ctx, data, path, entity.UploadOptions{})
	require.NoError(t, err)

	_, err = b.Upload(ctx, data, path, entity.UploadOptions{})
	assert.ErrorIs(t, err, ErrObjectExists)

	url2, err := b.Upload(ctx, bytes.Repeat(data, 2), path, entity.UploadOptions{Upsert: true})
	require.NoError(t, err)
	assert.Equal(t, url, url2)

	info, err := b.StatObject(ctx, b.S3BucketName, b.constructFullPath(path), minio.StatObjectOptions{})
	require.NoError(t, err)
	assert.Equal(t, http.DetectContentType(data), info.ContentType)

	require.NoError(t, b.DeleteByURLs(ctx, []string{url}))
}
