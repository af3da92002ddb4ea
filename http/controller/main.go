package controller

import (
	"fmt"

	"github.com/tnqbao/gau-hackathon-service/config"
	"github.com/tnqbao/gau-hackathon-service/infra"
	"github.com/tnqbao/gau-hackathon-service/repository"
	"github.com/tnqbao/gau-hackathon-service/service/cloudservice"
	"github.com/tnqbao/gau-hackathon-service/service/hackathon"
	"github.com/tnqbao/gau-hackathon-service/service/remote"
	"github.com/tnqbao/gau-hackathon-service/service/template"
)

type Controller struct {
	Config     *config.Config
	Infra      *infra.Infra
	Repository *repository.Repository
	Service    *Services
}

type Services struct {
	Hackathons *hackathon.Manager
	Templates  *template.Manager
	Broker     *remote.Broker
	// Provisioner is nil when no Azure subscription is configured.
	Provisioner *cloudservice.Provisioner
}

func NewController(cfg *config.Config, infra *infra.Infra, repo *repository.Repository) (*Controller, error) {
	services, err := NewServices(cfg, infra, repo)
	if err != nil {
		return nil, err
	}
	return &Controller{
		Config:     cfg,
		Infra:      infra,
		Repository: repo,
		Service:    services,
	}, nil
}

func NewServices(cfg *config.Config, infra *infra.Infra, repo *repository.Repository) (*Services, error) {
	publisher := template.NewPublisher(infra.BlobStore, cfg.EnvConfig.Storage.TemplateContainer, infra.Logger)
	templates := template.NewManager(
		repo.TemplateRepo,
		repo.DockerHostRepo,
		template.NewCompiler(cfg.EnvConfig.Storage.TempDir),
		publisher,
		infra.Produce.ImagePullService,
		infra.Logger,
		cfg.EnvConfig.Docker.PullImageDelay,
	)

	services := &Services{
		Hackathons: hackathon.NewManager(hackathon.NewStores(repo), infra.Redis, infra.Logger),
		Templates:  templates,
		Broker:     remote.NewBroker(repo.VirtualEnvironmentRepo, infra.Logger),
	}

	if infra.CloudService != nil {
		provisioner, err := cloudservice.NewProvisioner(
			infra.CloudService,
			repo.UserResourceRepo,
			repo.UserOperationRepo,
			infra.Logger,
			infra.Telemetry.Tracer(),
			infra.Telemetry.Meter(),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud service provisioner: %w", err)
		}
		services.Provisioner = provisioner
	}
	return services, nil
}
