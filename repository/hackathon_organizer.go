package repository

import (
	"github.com/google/uuid"
	"github.com/tnqbao/gau-hackathon-service/entity"
	"gorm.io/gorm"
)

type HackathonOrganizerRepository struct {
	db *gorm.DB
}

func NewHackathonOrganizerRepository(db *gorm.DB) *HackathonOrganizerRepository {
	return &HackathonOrganizerRepository{db: db}
}

func (r *HackathonOrganizerRepository) Create(organizer *entity.HackathonOrganizer) error {
	if organizer.ID == uuid.Nil {
		organizer.ID = uuid.New()
	}
	return r.db.Create(organizer).Error
}

func (r *HackathonOrganizerRepository) FindByID(id uuid.UUID) (*entity.HackathonOrganizer, error) {
	var organizer entity.HackathonOrganizer
	err := r.db.Where("id = ?", id).First(&organizer).Error
	if err != nil {
		return nil, err
	}
	return &organizer, nil
}

func (r *HackathonOrganizerRepository) FindByHackathonID(hackathonID uuid.UUID) ([]entity.HackathonOrganizer, error) {
	var organizers []entity.HackathonOrganizer
	err := r.db.Where("hackathon_id = ?", hackathonID).Order("create_time ASC").Find(&organizers).Error
	if err != nil {
		return nil, err
	}
	return organizers, nil
}

func (r *HackathonOrganizerRepository) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	return r.db.Model(&entity.HackathonOrganizer{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes the organizer only when it belongs to the hackathon.
func (r *HackathonOrganizerRepository) Delete(id, hackathonID uuid.UUID) error {
	return r.db.Where("id = ? AND hackathon_id = ?", id, hackathonID).Delete(&entity.HackathonOrganizer{}).Error
}
