package repository

import (
	"github.com/google/uuid"
	"github.com/tnqbao/gau-hackathon-service/entity"
	"gorm.io/gorm"
)

type VMEndpointRepository struct {
	db *gorm.DB
}

func NewVMEndpointRepository(db *gorm.DB) *VMEndpointRepository {
	return &VMEndpointRepository{db: db}
}

func (r *VMEndpointRepository) Create(endpoint *entity.VMEndpoint) error {
	if endpoint.ID == uuid.Nil {
		endpoint.ID = uuid.New()
	}
	return r.db.Create(endpoint).Error
}

func (r *VMEndpointRepository) FindByVirtualMachineID(vmID uuid.UUID) ([]entity.VMEndpoint, error) {
	var endpoints []entity.VMEndpoint
	err := r.db.Where("virtual_machine_id = ?", vmID).Find(&endpoints).Error
	if err != nil {
		return nil, err
	}
	return endpoints, nil
}

type VMConfigRepository struct {
	db *gorm.DB
}

func NewVMConfigRepository(db *gorm.DB) *VMConfigRepository {
	return &VMConfigRepository{db: db}
}

func (r *VMConfigRepository) Create(config *entity.VMConfig) error {
	if config.ID == uuid.Nil {
		config.ID = uuid.New()
	}
	return r.db.Create(config).Error
}

func (r *VMConfigRepository) FindByVirtualMachineID(vmID uuid.UUID) (*entity.VMConfig, error) {
	var config entity.VMConfig
	err := r.db.Where("virtual_machine_id = ?", vmID).First(&config).Error
	if err != nil {
		return nil, err
	}
	return &config, nil
}
