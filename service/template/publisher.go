package template

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tnqbao/gau-hackathon-service/service"
)

var ErrPublish = errors.New("failed to publish template")

// BlobStore is satisfied by infra.MinioClient and infra.S3BlobStore.
type BlobStore interface {
	EnsureContainer(ctx context.Context, container string) error
	UploadFile(ctx context.Context, container, remoteName, localPath string) (string, error)
}

type Publisher struct {
	store     BlobStore
	container string
	logger    service.Logger
	now       func() time.Time
	newID     func() string
}

func NewPublisher(store BlobStore, container string, logger service.Logger) *Publisher {
	return &Publisher{
		store:     store,
		container: container,
		logger:    logger,
		now:       time.Now,
		newID:     timeBasedID,
	}
}

// Publish uploads the artifact at localPath under the hackathon's prefix and
// returns its public URL.
func (p *Publisher) Publish(ctx context.Context, hackathonName, localPath string) (string, error) {
	if err := p.store.EnsureContainer(ctx, p.container); err != nil {
		p.logger.ErrorWithContextf(ctx, err, "[Template] Failed to ensure container %s: %v", p.container, err)
		return "", fmt.Errorf("%w: %w: %v", ErrPublish, service.ErrProvider, err)
	}

	remoteName := RemoteName(hackathonName, p.newID(), p.now())
	url, err := p.store.UploadFile(ctx, p.container, remoteName, localPath)
	if err != nil {
		p.logger.ErrorWithContextf(ctx, err, "[Template] Failed to upload %s: %v", remoteName, err)
		return "", fmt.Errorf("%w: %w: %v", ErrPublish, service.ErrProvider, err)
	}

	p.logger.InfoWithContextf(ctx, "[Template] Published %s to %s", localPath, url)
	return url, nil
}

// SharedPrefix holds templates created outside any hackathon.
const SharedPrefix = "shared"

// RemoteName is "{hackathon}/{first 9 chars of id}{yyyymmddHHMMSS}.js".
func RemoteName(hackathonName, id string, at time.Time) string {
	if len(id) > 9 {
		id = id[:9]
	}
	if hackathonName == "" {
		hackathonName = SharedPrefix
	}
	return fmt.Sprintf("%s/%s%s.js", hackathonName, id, at.Format("20060102150405"))
}

func timeBasedID() string {
	id, err := uuid.NewUUID()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
