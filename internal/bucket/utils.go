package bucket

import (
	"fmt"
	"path"
	"strings"
)

func (b *Bucket) constructFullPath(objectPath string) string {
	return strings.TrimPrefix(path.Clean(path.Join(b.BaseFolder, objectPath)), "/")
}

func (b *Bucket) baseURL() string {
	if b.SubdomainEndpoint != "" {
		return fmt.Sprintf("https://%s/", b.SubdomainEndpoint)
	}
	return fmt.Sprintf("https://%s.%s/", b.S3BucketName, b.S3Endpoint)
}

func (b *Bucket) getCDNURL(filePath string) string {
	return b.baseURL() + filePath
}

func (b *Bucket) keyFromURL(u string) (string, bool) {
	key, ok := strings.CutPrefix(u, b.baseURL())
	if !ok || key == "" {
		return "", false
	}
	return key, true
}
