package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tnqbao/gau-hackathon-service/entity"
	"gorm.io/gorm"
)

type HackathonStatRepository struct {
	db *gorm.DB
}

func NewHackathonStatRepository(db *gorm.DB) *HackathonStatRepository {
	return &HackathonStatRepository{db: db}
}

func (r *HackathonStatRepository) FindByHackathonID(hackathonID uuid.UUID) ([]entity.HackathonStat, error) {
	var stats []entity.HackathonStat
	err := r.db.Where("hackathon_id = ?", hackathonID).Find(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *HackathonStatRepository) FindByType(hackathonID uuid.UUID, statType string) (*entity.HackathonStat, error) {
	var stat entity.HackathonStat
	err := r.db.Where("hackathon_id = ? AND type = ?", hackathonID, statType).First(&stat).Error
	if err != nil {
		return nil, err
	}
	return &stat, nil
}

// SetCount stores count for the stat type, creating the row on first use.
// Negative counts are stored as zero.
func (r *HackathonStatRepository) SetCount(hackathonID uuid.UUID, statType string, count int64, now time.Time) error {
	if count < 0 {
		count = 0
	}
	stat, err := r.FindByType(hackathonID, statType)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if stat != nil {
		return r.db.Model(&entity.HackathonStat{}).
			Where("id = ?", stat.ID).
			Updates(map[string]interface{}{"count": count, "update_time": now}).Error
	}
	return r.db.Create(&entity.HackathonStat{
		ID:          uuid.New(),
		HackathonID: hackathonID,
		Type:        statType,
		Count:       count,
		UpdateTime:  now,
	}).Error
}

// Increase adds delta to the stat count. The count never drops below zero.
func (r *HackathonStatRepository) Increase(hackathonID uuid.UUID, statType string, delta int64, now time.Time) error {
	stat, err := r.FindByType(hackathonID, statType)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	var current int64
	if stat != nil {
		current = stat.Count
	}
	return r.SetCount(hackathonID, statType, current+delta, now)
}
