package infra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tnqbao/gau-hackathon-service/config"
	"github.com/tnqbao/gau-hackathon-service/infra/produce"
)

type Infra struct {
	Redis        *RedisClient
	Postgres     *PostgresClient
	Logger       *LoggerClient
	Telemetry    *TelemetryClient
	RabbitMQ     *RabbitMQClient
	Produce      *produce.Produce
	BlobStore    BlobStore
	CloudService *AzureCloudServiceClient
}

func InitInfra(cfg *config.Config) *Infra {
	redis := InitRedisClient(cfg.EnvConfig)
	if redis == nil {
		panic("Failed to initialize Redis service")
	}

	postgres := InitPostgresClient(cfg.EnvConfig)
	if postgres == nil {
		panic("Failed to initialize Postgres service")
	}

	logger := InitLoggerClient(cfg.EnvConfig)
	if logger == nil {
		panic("Failed to initialize Logger service")
	}

	telemetry := InitTelemetryClient(cfg.EnvConfig)

	rabbitMQ := InitRabbitMQClient(cfg.EnvConfig)
	if rabbitMQ == nil {
		panic("Failed to initialize RabbitMQ service")
	}

	produceService := produce.InitProduce(rabbitMQ.Channel)
	if produceService == nil {
		panic("Failed to initialize Produce service")
	}

	blobStore := InitBlobStore(cfg.EnvConfig)

	// Optional: nil when no Azure subscription is configured
	cloudService := InitAzureCloudServiceClient(cfg.EnvConfig)

	return &Infra{
		Redis:        redis,
		Postgres:     postgres,
		Logger:       logger,
		Telemetry:    telemetry,
		RabbitMQ:     rabbitMQ,
		Produce:      produceService,
		BlobStore:    blobStore,
		CloudService: cloudService,
	}
}

func (i *Infra) Close(ctx context.Context) error {
	var errs []error
	if i.RabbitMQ != nil {
		errs = append(errs, i.RabbitMQ.Close())
	}
	if i.Redis != nil {
		errs = append(errs, i.Redis.Client.Close())
	}
	if i.Telemetry != nil {
		errs = append(errs, i.Telemetry.Shutdown(ctx))
	}
	if i.Logger != nil {
		errs = append(errs, i.Logger.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

type Closer interface {
	Close(ctx context.Context) error
}

// RunAndClose runs fn and then closes c within timeout, whether fn failed or
// not, so buffered logs and spans are flushed before the process exits.
func RunAndClose(c Closer, timeout time.Duration, fn func() error) error {
	runErr := fn()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := c.Close(ctx); err != nil {
		return errors.Join(runErr, fmt.Errorf("failed to close infra: %w", err))
	}
	return runErr
}
