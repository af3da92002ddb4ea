package infra

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/minio/madmin-go/v3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/tnqbao/gau-hackathon-service/config"
)

type MinioClient struct {
	Admin         *madmin.AdminClient
	Client        *minio.Client
	Endpoint      string
	PublicBaseURL string
}

func InitMinioClient(cfg *config.EnvConfig) *MinioClient {
	endpoint := cfg.Minio.Endpoint
	if endpoint == "" {
		panic("MinIO endpoint is not configured")
	}

	rootUser := cfg.Minio.RootUser
	if rootUser == "" {
		panic("MinIO root user is not configured")
	}

	rootPassword := cfg.Minio.RootPassword
	if rootPassword == "" {
		panic("MinIO root password is not configured")
	}

	madminClient, err := madmin.New(endpoint, rootUser, rootPassword, cfg.Minio.UseSSL)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize MinIO admin client: %v", err))
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(rootUser, rootPassword, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize MinIO client: %v", err))
	}

	client := &MinioClient{
		Admin:         madminClient,
		Client:        minioClient,
		Endpoint:      endpoint,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if mode, err := client.ServerMode(ctx); err != nil {
		log.Printf("Warning: MinIO admin probe failed: %v", err)
	} else {
		log.Println("Connected to MinIO:", endpoint+" mode "+mode)
	}

	return client
}

// ServerMode reports the deployment mode of the MinIO cluster.
func (m *MinioClient) ServerMode(ctx context.Context) (string, error) {
	info, err := m.Admin.ServerInfo(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get MinIO server info: %w", err)
	}
	return info.Mode, nil
}

func (m *MinioClient) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	exists, err := m.Client.BucketExists(ctx, bucketName)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	return exists, nil
}

// EnsureContainer creates the bucket with anonymous read access when it does
// not exist yet.
func (m *MinioClient) EnsureContainer(ctx context.Context, container string) error {
	exists, err := m.BucketExists(ctx, container)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := m.Client.MakeBucket(ctx, container, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", container, err)
	}

	if err := m.Client.SetBucketPolicy(ctx, container, string(BuildPublicReadPolicyJSON(container))); err != nil {
		return fmt.Errorf("failed to set public read policy on bucket %s: %w", container, err)
	}
	return nil
}

func (m *MinioClient) UploadFile(ctx context.Context, container, remoteName, localPath string) (string, error) {
	checksum, err := fileChecksum(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to checksum %s: %w", localPath, err)
	}

	_, err = m.Client.FPutObject(ctx, container, remoteName, localPath, minio.PutObjectOptions{
		ContentType:  contentTypeFor(remoteName),
		UserMetadata: map[string]string{"checksum": checksum},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", remoteName, container, err)
	}

	return publicObjectURL(m.PublicBaseURL, container, remoteName), nil
}

func BuildPublicReadPolicyJSON(bucket string) []byte {
	return []byte(fmt.Sprintf(`{
	"Version": "2012-10-17",
	"Statement": [
		{
			"Effect": "Allow",
			"Principal": {"AWS": ["*"]},
			"Action": ["s3:GetObject"],
			"Resource": ["arn:aws:s3:::%s/*"]
		}
	]
}`, bucket))
}
