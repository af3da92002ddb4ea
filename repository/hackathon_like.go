package repository

import (
	"github.com/google/uuid"
	"github.com/tnqbao/gau-hackathon-service/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HackathonLikeRepository struct {
	db *gorm.DB
}

func NewHackathonLikeRepository(db *gorm.DB) *HackathonLikeRepository {
	return &HackathonLikeRepository{db: db}
}

// CreateIfAbsent inserts the like unless the user already likes the
// hackathon, and reports whether a row was inserted.
func (r *HackathonLikeRepository) CreateIfAbsent(like *entity.HackathonLike) (bool, error) {
	if like.ID == uuid.Nil {
		like.ID = uuid.New()
	}
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *HackathonLikeRepository) Find(userID, hackathonID uuid.UUID) (*entity.HackathonLike, error) {
	var like entity.HackathonLike
	err := r.db.Where("user_id = ? AND hackathon_id = ?", userID, hackathonID).First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *HackathonLikeRepository) Delete(userID, hackathonID uuid.UUID) error {
	return r.db.Where("user_id = ? AND hackathon_id = ?", userID, hackathonID).Delete(&entity.HackathonLike{}).Error
}

func (r *HackathonLikeRepository) CountByHackathonID(hackathonID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&entity.HackathonLike{}).Where("hackathon_id = ?", hackathonID).Count(&count).Error
	return count, err
}
