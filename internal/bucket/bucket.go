package bucket

import (
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	S3AccessKey       string `mapstructure:"s3_access_key"`
	S3SecretAccessKey string `mapstructure:"s3_secret_access_key"`
	S3Endpoint        string `mapstructure:"s3_endpoint"`
	S3BucketName      string `mapstructure:"s3_bucket_name"`
	S3BucketLocation  string `mapstructure:"s3_bucket_location"`
	BaseFolder        string `mapstructure:"base_folder"`
	// SubdomainEndpoint is the CDN host serving the bucket, if any.
	SubdomainEndpoint string `mapstructure:"subdomain_endpoint"`
	// Insecure disables TLS, for local minio.
	Insecure bool `mapstructure:"insecure"`
}

type Bucket struct {
	*minio.Client
	*Config
}

// New returns a bucket client. It does not contact the endpoint.
func (c *Config) New() (*Bucket, error) {
	cli, err := minio.New(c.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(c.S3AccessKey, c.S3SecretAccessKey, ""),
		Secure: !c.Insecure,
		Region: c.S3BucketLocation,
	})
	if err != nil {
		return nil, fmt.Errorf("can't create minio client: %w", err)
	}
	return &Bucket{
		Client: cli,
		Config: c,
	}, nil
}
