package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/tnqbao/gau-hackathon-service/infra/produce"
	"github.com/tnqbao/gau-hackathon-service/service"
)

type amqpConsumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

// ImagePullConsumer posts due image pull jobs to the docker remote API of
// the target host.
type ImagePullConsumer struct {
	channel amqpConsumer
	client  *http.Client
	logger  service.Logger
}

func NewImagePullConsumer(channel amqpConsumer, logger service.Logger) *ImagePullConsumer {
	return &ImagePullConsumer{
		channel: channel,
		client:  &http.Client{Timeout: 5 * time.Minute},
		logger:  logger,
	}
}

func (c *ImagePullConsumer) Start(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		produce.ImagePullQueue,
		"",
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register image pull consumer: %w", err)
	}

	c.logger.InfoWithContextf(ctx, "[ImagePull Consumer] Started listening on queue: %s", produce.ImagePullQueue)

	go func() {
		for {
			select {
			case <-ctx.Done():
				c.logger.InfoWithContextf(ctx, "[ImagePull Consumer] Shutting down...")
				return
			case msg, ok := <-msgs:
				if !ok {
					c.logger.WarningWithContextf(ctx, "[ImagePull Consumer] Channel closed")
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()

	return nil
}

// handle acks every well formed job whatever the pull outcome. Pulls are
// best effort and are not retried.
func (c *ImagePullConsumer) handle(ctx context.Context, msg amqp.Delivery) {
	var payload produce.ImagePullMessage
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		c.logger.ErrorWithContextf(ctx, err, "[ImagePull Consumer] Failed to unmarshal message")
		_ = msg.Nack(false, false)
		return
	}
	if payload.DockerAPI == "" || payload.Image == "" {
		c.logger.WarningWithContextf(ctx, "[ImagePull Consumer] Dropping incomplete job: %s", string(msg.Body))
		_ = msg.Nack(false, false)
		return
	}

	if err := c.pull(ctx, payload.DockerAPI, payload.Image); err != nil {
		c.logger.ErrorWithContextf(ctx, err, "[ImagePull Consumer] Failed to pull %s on %s: %v", payload.Image, payload.DockerAPI, err)
	} else {
		c.logger.InfoWithContextf(ctx, "[ImagePull Consumer] Pulled %s on %s", payload.Image, payload.DockerAPI)
	}
	_ = msg.Ack(false)
}

func (c *ImagePullConsumer) pull(ctx context.Context, dockerAPI, image string) error {
	endpoint := strings.TrimRight(dockerAPI, "/") + "/images/create?fromImage=" + url.QueryEscape(image)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// The daemon streams progress until the pull finishes.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("docker daemon answered %s", resp.Status)
	}
	return nil
}
