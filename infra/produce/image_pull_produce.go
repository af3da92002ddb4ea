package produce

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	DockerExchange         = "docker.exchange"
	ImagePullQueue         = "docker.image_pull"
	ImagePullRoutingKey    = "docker.image_pull"
	ImagePullDelayQueue    = "docker.image_pull.delay"
	imagePullDelayExchange = ""
)

// ImagePullMessage asks the worker to POST an image pull to a docker host.
type ImagePullMessage struct {
	DockerAPI   string `json:"docker_api"`
	Image       string `json:"image"`
	ScheduledAt int64  `json:"scheduled_at"`
	Timestamp   int64  `json:"timestamp"`
}

type amqpPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type ImagePullService struct {
	channel amqpPublisher
	now     func() time.Time
}

func InitImagePullService(channel *amqp.Channel) *ImagePullService {
	// Declare exchange
	err := channel.ExchangeDeclare(
		DockerExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to declare Docker exchange: " + err.Error())
	}

	// Declare work queue
	_, err = channel.QueueDeclare(
		ImagePullQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		panic("Failed to declare image pull queue: " + err.Error())
	}

	err = channel.QueueBind(
		ImagePullQueue,
		ImagePullRoutingKey,
		DockerExchange,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to bind image pull queue: " + err.Error())
	}

	// Messages wait here until their expiration and are then dead-lettered
	// into the work queue.
	_, err = channel.QueueDeclare(
		ImagePullDelayQueue,
		true,
		false,
		false,
		false,
		amqp.Table{
			"x-dead-letter-exchange":    DockerExchange,
			"x-dead-letter-routing-key": ImagePullRoutingKey,
		},
	)
	if err != nil {
		panic("Failed to declare image pull delay queue: " + err.Error())
	}

	return newImagePullService(channel, time.Now)
}

func newImagePullService(channel amqpPublisher, now func() time.Time) *ImagePullService {
	return &ImagePullService{channel: channel, now: now}
}

// SchedulePullImage publishes a pull job that becomes visible to the worker
// at runAt.
func (s *ImagePullService) SchedulePullImage(ctx context.Context, dockerAPI, image string, runAt time.Time) error {
	now := s.now()
	message := ImagePullMessage{
		DockerAPI:   dockerAPI,
		Image:       image,
		ScheduledAt: runAt.Unix(),
		Timestamp:   now.Unix(),
	}

	body, err := json.Marshal(message)
	if err != nil {
		return err
	}

	return s.channel.PublishWithContext(
		ctx,
		imagePullDelayExchange,
		ImagePullDelayQueue,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    now,
			Expiration:   expiration(runAt, now),
		},
	)
}

// expiration is the per-message TTL in milliseconds.
func expiration(runAt, now time.Time) string {
	delay := runAt.Sub(now)
	if delay < 0 {
		delay = 0
	}
	return strconv.FormatInt(delay.Milliseconds(), 10)
}
