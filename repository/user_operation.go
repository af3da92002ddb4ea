package repository

import (
	"github.com/google/uuid"
	"github.com/tnqbao/gau-hackathon-service/entity"
	"gorm.io/gorm"
)

type UserOperationRepository struct {
	db *gorm.DB
}

func NewUserOperationRepository(db *gorm.DB) *UserOperationRepository {
	return &UserOperationRepository{db: db}
}

func (r *UserOperationRepository) Create(operation *entity.UserOperation) error {
	if operation.ID == uuid.Nil {
		operation.ID = uuid.New()
	}
	return r.db.Create(operation).Error
}

func (r *UserOperationRepository) FindByTemplateID(templateID uuid.UUID) ([]entity.UserOperation, error) {
	var operations []entity.UserOperation
	err := r.db.Where("template_id = ?", templateID).Order("create_time ASC").Find(&operations).Error
	if err != nil {
		return nil, err
	}
	return operations, nil
}
