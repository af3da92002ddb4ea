package repository

import (
	"github.com/google/uuid"
	"github.com/tnqbao/gau-hackathon-service/entity"
	"gorm.io/gorm"
)

type UserHackathonRelRepository struct {
	db *gorm.DB
}

func NewUserHackathonRelRepository(db *gorm.DB) *UserHackathonRelRepository {
	return &UserHackathonRelRepository{db: db}
}

func (r *UserHackathonRelRepository) Create(rel *entity.UserHackathonRel) error {
	if rel.ID == uuid.Nil {
		rel.ID = uuid.New()
	}
	return r.db.Create(rel).Error
}

// CountApprovedByOnline counts approved, non deleted registrations whose user
// has the given online flag.
func (r *UserHackathonRelRepository) CountApprovedByOnline(hackathonID uuid.UUID, online bool) (int64, error) {
	var count int64
	err := r.db.Model(&entity.UserHackathonRel{}).
		Joins("JOIN users ON users.id = user_hackathon_rels.user_id").
		Where("user_hackathon_rels.hackathon_id = ?", hackathonID).
		Where("user_hackathon_rels.deleted = ?", false).
		Where("user_hackathon_rels.status IN ?", []string{entity.RegistrationStatusAuditPassed, entity.RegistrationStatusAutoPassed}).
		Where("users.online = ?", online).
		Count(&count).Error
	return count, err
}

func (r *UserHackathonRelRepository) FindByUserAndHackathon(userID, hackathonID uuid.UUID) (*entity.UserHackathonRel, error) {
	var rel entity.UserHackathonRel
	err := r.db.Where("user_id = ? AND hackathon_id = ? AND deleted = ?", userID, hackathonID, false).First(&rel).Error
	if err != nil {
		return nil, err
	}
	return &rel, nil
}
