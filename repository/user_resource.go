package repository

import (
	"github.com/google/uuid"
	"github.com/tnqbao/gau-hackathon-service/entity"
	"gorm.io/gorm"
)

type UserResourceRepository struct {
	db *gorm.DB
}

func NewUserResourceRepository(db *gorm.DB) *UserResourceRepository {
	return &UserResourceRepository{db: db}
}

func (r *UserResourceRepository) Create(resource *entity.UserResource) error {
	if resource.ID == uuid.Nil {
		resource.ID = uuid.New()
	}
	return r.db.Create(resource).Error
}

func (r *UserResourceRepository) CountByTypeAndName(resourceType, name string) (int64, error) {
	var count int64
	err := r.db.Model(&entity.UserResource{}).
		Where("type = ? AND name = ?", resourceType, name).
		Count(&count).Error
	return count, err
}

func (r *UserResourceRepository) FindByCloudServiceID(cloudServiceID uuid.UUID) ([]entity.UserResource, error) {
	var resources []entity.UserResource
	err := r.db.Where("cloud_service_id = ?", cloudServiceID).Find(&resources).Error
	if err != nil {
		return nil, err
	}
	return resources, nil
}

// DeleteCloudServiceCascade removes every CLOUD_SERVICE row with the given
// name together with its deployments, virtual machines and their endpoint
// and config rows.
func (r *UserResourceRepository) DeleteCloudServiceCascade(name string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var serviceIDs []uuid.UUID
		if err := tx.Model(&entity.UserResource{}).
			Where("type = ? AND name = ?", entity.ResourceTypeCloudService, name).
			Pluck("id", &serviceIDs).Error; err != nil {
			return err
		}
		if len(serviceIDs) == 0 {
			return nil
		}

		var vmIDs []uuid.UUID
		if err := tx.Model(&entity.UserResource{}).
			Where("type = ? AND cloud_service_id IN ?", entity.ResourceTypeVirtualMachine, serviceIDs).
			Pluck("id", &vmIDs).Error; err != nil {
			return err
		}

		if len(vmIDs) > 0 {
			if err := tx.Where("virtual_machine_id IN ?", vmIDs).Delete(&entity.VMEndpoint{}).Error; err != nil {
				return err
			}
			if err := tx.Where("virtual_machine_id IN ?", vmIDs).Delete(&entity.VMConfig{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("cloud_service_id IN ?", serviceIDs).Delete(&entity.UserResource{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", serviceIDs).Delete(&entity.UserResource{}).Error
	})
}
