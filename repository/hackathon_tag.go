package repository

import (
	"github.com/google/uuid"
	"github.com/tnqbao/gau-hackathon-service/entity"
	"gorm.io/gorm"
)

type HackathonTagRepository struct {
	db *gorm.DB
}

func NewHackathonTagRepository(db *gorm.DB) *HackathonTagRepository {
	return &HackathonTagRepository{db: db}
}

func (r *HackathonTagRepository) FindByHackathonID(hackathonID uuid.UUID) ([]entity.HackathonTag, error) {
	var tags []entity.HackathonTag
	err := r.db.Where("hackathon_id = ?", hackathonID).Order("create_time ASC").Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// Replace drops the current tags of the hackathon and stores the given ones.
func (r *HackathonTagRepository) Replace(hackathonID uuid.UUID, tags []entity.HackathonTag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hackathon_id = ?", hackathonID).Delete(&entity.HackathonTag{}).Error; err != nil {
			return err
		}
		if len(tags) == 0 {
			return nil
		}
		return tx.Create(&tags).Error
	})
}

func (r *HackathonTagRepository) Distinct() ([]string, error) {
	var tags []string
	err := r.db.Model(&entity.HackathonTag{}).Distinct("tag").Order("tag").Pluck("tag", &tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}
