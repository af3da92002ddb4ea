package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/tnqbao/gau-hackathon-service/config"
	"github.com/tnqbao/gau-hackathon-service/http/controller"
	routes "github.com/tnqbao/gau-hackathon-service/http/route"
	infraPkg "github.com/tnqbao/gau-hackathon-service/infra"
	"github.com/tnqbao/gau-hackathon-service/repository"
)

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	infra := infraPkg.InitInfra(cfg)

	err = infraPkg.RunAndClose(infra, 5*time.Second, func() error {
		return serve(cfg, infra)
	})
	if err != nil {
		log.Printf("HTTP server stopped: %v", err)
		os.Exit(1)
	}
}

func serve(cfg *config.Config, infra *infraPkg.Infra) error {
	if err := repository.Migrate(infra.Postgres.DB); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	repo := repository.InitRepository(infra)

	ctrl, err := controller.NewController(cfg, infra, repo)
	if err != nil {
		return fmt.Errorf("failed to create controller: %w", err)
	}

	router := routes.SetupRouter(ctrl)

	log.Println("HTTP Server started on :8080")
	if err := router.Run(":8080"); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
