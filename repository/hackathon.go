package repository

import (
	"strings"

	"github.com/google/uuid"
	"github.com/tnqbao/gau-hackathon-service/entity"
	"gorm.io/gorm"
)

type HackathonRepository struct {
	db *gorm.DB
}

type HackathonFilter struct {
	Page    int
	PerPage int
	OrderBy string
	Status  string
	Name    string
}

func NewHackathonRepository(db *gorm.DB) *HackathonRepository {
	return &HackathonRepository{db: db}
}

func (r *HackathonRepository) Create(hackathon *entity.Hackathon) error {
	if hackathon.ID == uuid.Nil {
		hackathon.ID = uuid.New()
	}
	return r.db.Create(hackathon).Error
}

// CreateWithAdmin stores the hackathon and makes its creator an admin in one
// transaction.
func (r *HackathonRepository) CreateWithAdmin(hackathon *entity.Hackathon, admin *entity.AdminHackathonRel) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if hackathon.ID == uuid.Nil {
			hackathon.ID = uuid.New()
		}
		if err := tx.Create(hackathon).Error; err != nil {
			return err
		}
		if admin.ID == uuid.Nil {
			admin.ID = uuid.New()
		}
		admin.HackathonID = hackathon.ID
		return tx.Create(admin).Error
	})
}

func (r *HackathonRepository) FindByID(id uuid.UUID) (*entity.Hackathon, error) {
	var hackathon entity.Hackathon
	err := r.db.Where("id = ?", id).First(&hackathon).Error
	if err != nil {
		return nil, err
	}
	return &hackathon, nil
}

func (r *HackathonRepository) FindByName(name string) (*entity.Hackathon, error) {
	var hackathon entity.Hackathon
	err := r.db.Where("name = ?", name).First(&hackathon).Error
	if err != nil {
		return nil, err
	}
	return &hackathon, nil
}

func (r *HackathonRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Hackathon{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *HackathonRepository) FindByStatus(status string) ([]entity.Hackathon, error) {
	var hackathons []entity.Hackathon
	err := r.db.Where("status = ?", status).Order("create_time DESC").Find(&hackathons).Error
	if err != nil {
		return nil, err
	}
	return hackathons, nil
}

func (r *HackathonRepository) FindAll() ([]entity.Hackathon, error) {
	var hackathons []entity.Hackathon
	err := r.db.Order("create_time DESC").Find(&hackathons).Error
	if err != nil {
		return nil, err
	}
	return hackathons, nil
}

func (r *HackathonRepository) FindByIDs(ids []uuid.UUID) ([]entity.Hackathon, error) {
	var hackathons []entity.Hackathon
	if len(ids) == 0 {
		return hackathons, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&hackathons).Error
	if err != nil {
		return nil, err
	}
	return hackathons, nil
}

// List returns one page of hackathons and the total number of matches.
func (r *HackathonRepository) List(filter HackathonFilter) ([]entity.Hackathon, int64, error) {
	query := r.db.Model(&entity.Hackathon{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "create_time DESC"
	if filter.OrderBy == "id" {
		order = "id DESC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage < 1 {
		perPage = 20
	}

	var hackathons []entity.Hackathon
	err := query.Order(order).Offset((page - 1) * perPage).Limit(perPage).Find(&hackathons).Error
	if err != nil {
		return nil, 0, err
	}
	return hackathons, total, nil
}

func (r *HackathonRepository) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	return r.db.Model(&entity.Hackathon{}).Where("id = ?", id).Updates(fields).Error
}
