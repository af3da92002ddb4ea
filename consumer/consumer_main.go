package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tnqbao/gau-hackathon-service/config"
	"github.com/tnqbao/gau-hackathon-service/consumer/worker"
	infraPkg "github.com/tnqbao/gau-hackathon-service/infra"
)

func main() {
	err := godotenv.Load("../.env")
	if err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	infra := infraPkg.InitInfra(cfg)

	err = infraPkg.RunAndClose(infra, 5*time.Second, func() error {
		return consume(infra)
	})
	if err != nil {
		log.Printf("Consumer stopped: %v", err)
		os.Exit(1)
	}
	log.Println("Consumer exited properly")
}

func consume(infra *infraPkg.Infra) error {
	// Initialize context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	imagePullConsumer := worker.NewImagePullConsumer(infra.RabbitMQ.Channel, infra.Logger)
	if err := imagePullConsumer.Start(ctx); err != nil {
		infra.Logger.ErrorWithContextf(ctx, err, "Failed to start ImagePull consumer: %v", err)
		return fmt.Errorf("failed to start ImagePull consumer: %w", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	infra.Logger.InfoWithContextf(ctx, "Shutting down consumer...")
	return nil
}
