package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tnqbao/gau-hackathon-service/entity"
	"gorm.io/gorm"
)

type HackathonConfigRepository struct {
	db *gorm.DB
}

func NewHackathonConfigRepository(db *gorm.DB) *HackathonConfigRepository {
	return &HackathonConfigRepository{db: db}
}

func (r *HackathonConfigRepository) FindByHackathonID(hackathonID uuid.UUID) ([]entity.HackathonConfig, error) {
	var configs []entity.HackathonConfig
	err := r.db.Where("hackathon_id = ?", hackathonID).Find(&configs).Error
	if err != nil {
		return nil, err
	}
	return configs, nil
}

func (r *HackathonConfigRepository) FindByKey(hackathonID uuid.UUID, key string) (*entity.HackathonConfig, error) {
	var config entity.HackathonConfig
	err := r.db.Where(&entity.HackathonConfig{HackathonID: hackathonID, Key: key}).First(&config).Error
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Upsert updates the value of an existing key or inserts a new row.
func (r *HackathonConfigRepository) Upsert(hackathonID uuid.UUID, key, value string, now time.Time) error {
	existing, err := r.FindByKey(hackathonID, key)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		return r.db.Model(&entity.HackathonConfig{}).
			Where("id = ?", existing.ID).
			Updates(map[string]interface{}{"value": value, "update_time": now}).Error
	}
	return r.db.Create(&entity.HackathonConfig{
		ID:          uuid.New(),
		HackathonID: hackathonID,
		Key:         key,
		Value:       value,
		CreateTime:  now,
		UpdateTime:  now,
	}).Error
}

func (r *HackathonConfigRepository) DeleteByKey(hackathonID uuid.UUID, key string) error {
	return r.db.Where(&entity.HackathonConfig{HackathonID: hackathonID, Key: key}).Delete(&entity.HackathonConfig{}).Error
}
