package infra

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/tnqbao/gau-hackathon-service/config"
)

type S3BlobStore struct {
	client        *s3.Client
	publicBaseURL string
}

func NewS3BlobStore(cfg *config.EnvConfig) (*S3BlobStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
		if cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
		}
	})

	publicBaseURL := cfg.Storage.PublicBaseURL
	if publicBaseURL == "" {
		publicBaseURL = cfg.S3.Endpoint
	}

	return &S3BlobStore{
		client:        client,
		publicBaseURL: publicBaseURL,
	}, nil
}

func (s *S3BlobStore) EnsureContainer(ctx context.Context, container string) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(container),
	})
	if err == nil {
		return nil
	}
	if !isS3NotFound(err) {
		return fmt.Errorf("failed to check bucket %s: %w", container, err)
	}

	_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(container),
	})
	if err != nil {
		var owned *types.BucketAlreadyOwnedByYou
		if errors.As(err, &owned) {
			return nil
		}
		return fmt.Errorf("failed to create bucket %s: %w", container, err)
	}
	return nil
}

func (s *S3BlobStore) UploadFile(ctx context.Context, container, remoteName, localPath string) (string, error) {
	checksum, err := fileChecksum(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to checksum %s: %w", localPath, err)
	}

	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", localPath, err)
	}
	defer f.Close()

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(container),
		Key:         aws.String(remoteName),
		Body:        f,
		ContentType: aws.String(contentTypeFor(remoteName)),
		Metadata:    map[string]string{"checksum": checksum},
	})
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}

	return publicObjectURL(s.publicBaseURL, container, remoteName), nil
}

func isS3NotFound(err error) bool {
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "NotFound" || code == "NoSuchBucket"
	}
	return false
}
