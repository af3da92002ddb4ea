package repository

import (
	"github.com/google/uuid"
	"github.com/tnqbao/gau-hackathon-service/entity"
	"gorm.io/gorm"
)

type VirtualEnvironmentRepository struct {
	db *gorm.DB
}

func NewVirtualEnvironmentRepository(db *gorm.DB) *VirtualEnvironmentRepository {
	return &VirtualEnvironmentRepository{db: db}
}

func (r *VirtualEnvironmentRepository) Create(ve *entity.VirtualEnvironment) error {
	if ve.ID == uuid.Nil {
		ve.ID = uuid.New()
	}
	return r.db.Create(ve).Error
}

// FindFirstByNameStatusAndRemote returns the first environment matching the
// three filters, with its experiment loaded.
func (r *VirtualEnvironmentRepository) FindFirstByNameStatusAndRemote(name, status, remoteProvider string) (*entity.VirtualEnvironment, error) {
	var ve entity.VirtualEnvironment
	err := r.db.Preload("Experiment").
		Where("name = ? AND status = ? AND remote_provider = ?", name, status, remoteProvider).
		Order("create_time ASC").
		First(&ve).Error
	if err != nil {
		return nil, err
	}
	return &ve, nil
}

type ExperimentRepository struct {
	db *gorm.DB
}

func NewExperimentRepository(db *gorm.DB) *ExperimentRepository {
	return &ExperimentRepository{db: db}
}

func (r *ExperimentRepository) Create(experiment *entity.Experiment) error {
	if experiment.ID == uuid.Nil {
		experiment.ID = uuid.New()
	}
	return r.db.Create(experiment).Error
}
