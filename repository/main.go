package repository

import (
	"github.com/tnqbao/gau-hackathon-service/entity"
	"github.com/tnqbao/gau-hackathon-service/infra"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB

	UserResourceRepo       *UserResourceRepository
	VMEndpointRepo         *VMEndpointRepository
	VMConfigRepo           *VMConfigRepository
	UserOperationRepo      *UserOperationRepository
	TemplateRepo           *TemplateRepository
	DockerHostRepo         *DockerHostRepository
	VirtualEnvironmentRepo *VirtualEnvironmentRepository
	ExperimentRepo         *ExperimentRepository
	HackathonRepo          *HackathonRepository
	HackathonConfigRepo    *HackathonConfigRepository
	HackathonStatRepo      *HackathonStatRepository
	HackathonTagRepo       *HackathonTagRepository
	HackathonLikeRepo      *HackathonLikeRepository
	HackathonOrganizerRepo *HackathonOrganizerRepository
	AdminHackathonRelRepo  *AdminHackathonRelRepository
	UserHackathonRelRepo   *UserHackathonRelRepository
	UserRepo               *UserRepository
}

func InitRepository(infra *infra.Infra) *Repository {
	return NewRepository(infra.Postgres.DB)
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:                     db,
		UserResourceRepo:       NewUserResourceRepository(db),
		VMEndpointRepo:         NewVMEndpointRepository(db),
		VMConfigRepo:           NewVMConfigRepository(db),
		UserOperationRepo:      NewUserOperationRepository(db),
		TemplateRepo:           NewTemplateRepository(db),
		DockerHostRepo:         NewDockerHostRepository(db),
		VirtualEnvironmentRepo: NewVirtualEnvironmentRepository(db),
		ExperimentRepo:         NewExperimentRepository(db),
		HackathonRepo:          NewHackathonRepository(db),
		HackathonConfigRepo:    NewHackathonConfigRepository(db),
		HackathonStatRepo:      NewHackathonStatRepository(db),
		HackathonTagRepo:       NewHackathonTagRepository(db),
		HackathonLikeRepo:      NewHackathonLikeRepository(db),
		HackathonOrganizerRepo: NewHackathonOrganizerRepository(db),
		AdminHackathonRelRepo:  NewAdminHackathonRelRepository(db),
		UserHackathonRelRepo:   NewUserHackathonRelRepository(db),
		UserRepo:               NewUserRepository(db),
	}
}

func (r *Repository) WithTransaction(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}

// Transaction runs fn against a repository bound to a single database
// transaction.
func (r *Repository) Transaction(fn func(repo *Repository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTransaction(tx))
	})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.UserResource{},
		&entity.VMEndpoint{},
		&entity.VMConfig{},
		&entity.UserOperation{},
		&entity.Template{},
		&entity.HackathonTemplateRel{},
		&entity.DockerHostServer{},
		&entity.Experiment{},
		&entity.VirtualEnvironment{},
		&entity.Hackathon{},
		&entity.HackathonConfig{},
		&entity.HackathonStat{},
		&entity.HackathonTag{},
		&entity.HackathonLike{},
		&entity.HackathonOrganizer{},
		&entity.AdminHackathonRel{},
		&entity.UserHackathonRel{},
		&entity.User{},
	)
}
