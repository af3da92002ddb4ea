package infra

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/tnqbao/gau-hackathon-service/config"
)

const (
	StorageProviderMinio = "minio"
	StorageProviderS3    = "s3"
)

// BlobStore stores published artifacts in named containers and hands back a
// public URL for each upload.
type BlobStore interface {
	EnsureContainer(ctx context.Context, container string) error
	UploadFile(ctx context.Context, container, remoteName, localPath string) (string, error)
}

func InitBlobStore(cfg *config.EnvConfig) BlobStore {
	switch cfg.Storage.Provider {
	case StorageProviderS3:
		store, err := NewS3BlobStore(cfg)
		if err != nil {
			panic(fmt.Sprintf("Failed to initialize S3 blob store: %v", err))
		}
		return store
	default:
		return InitMinioClient(cfg)
	}
}

func publicObjectURL(baseURL, container, remoteName string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + container + "/" + strings.TrimPrefix(remoteName, "/")
}

// fileChecksum returns the xxhash64 of the file content in hex.
func fileChecksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return "", err
	}
	return strconv.FormatUint(digest.Sum64(), 16), nil
}

func contentTypeFor(name string) string {
	switch {
	case strings.HasSuffix(name, ".js"):
		return "application/javascript"
	case strings.HasSuffix(name, ".json"):
		return "application/json"
	default:
		return "application/octet-stream"
	}
}
