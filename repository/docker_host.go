package repository

import (
	"github.com/google/uuid"
	"github.com/tnqbao/gau-hackathon-service/entity"
	"gorm.io/gorm"
)

type DockerHostRepository struct {
	db *gorm.DB
}

func NewDockerHostRepository(db *gorm.DB) *DockerHostRepository {
	return &DockerHostRepository{db: db}
}

func (r *DockerHostRepository) Create(host *entity.DockerHostServer) error {
	if host.ID == uuid.Nil {
		host.ID = uuid.New()
	}
	return r.db.Create(host).Error
}

func (r *DockerHostRepository) FindByHackathonID(hackathonID uuid.UUID) ([]entity.DockerHostServer, error) {
	var hosts []entity.DockerHostServer
	err := r.db.Where("hackathon_id = ?", hackathonID).Find(&hosts).Error
	if err != nil {
		return nil, err
	}
	return hosts, nil
}
