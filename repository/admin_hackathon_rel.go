package repository

import (
	"github.com/google/uuid"
	"github.com/tnqbao/gau-hackathon-service/entity"
	"gorm.io/gorm"
)

type AdminHackathonRelRepository struct {
	db *gorm.DB
}

func NewAdminHackathonRelRepository(db *gorm.DB) *AdminHackathonRelRepository {
	return &AdminHackathonRelRepository{db: db}
}

func (r *AdminHackathonRelRepository) Create(rel *entity.AdminHackathonRel) error {
	if rel.ID == uuid.Nil {
		rel.ID = uuid.New()
	}
	return r.db.Create(rel).Error
}

func (r *AdminHackathonRelRepository) FindByHackathonID(hackathonID uuid.UUID) ([]entity.AdminHackathonRel, error) {
	var rels []entity.AdminHackathonRel
	err := r.db.Where("hackathon_id = ?", hackathonID).Find(&rels).Error
	if err != nil {
		return nil, err
	}
	return rels, nil
}

func (r *AdminHackathonRelRepository) IsAdmin(userID, hackathonID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&entity.AdminHackathonRel{}).
		Where("user_id = ? AND hackathon_id = ?", userID, hackathonID).
		Count(&count).Error
	return count > 0, err
}
