package repository

import (
	"github.com/google/uuid"
	"github.com/tnqbao/gau-hackathon-service/entity"
	"gorm.io/gorm"
)

type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Create(template *entity.Template) error {
	if template.ID == uuid.Nil {
		template.ID = uuid.New()
	}
	return r.db.Create(template).Error
}

// CreateWithHackathon stores the template and links it to a hackathon in one
// transaction.
func (r *TemplateRepository) CreateWithHackathon(template *entity.Template, hackathonID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if template.ID == uuid.Nil {
			template.ID = uuid.New()
		}
		if err := tx.Create(template).Error; err != nil {
			return err
		}
		rel := &entity.HackathonTemplateRel{
			ID:          uuid.New(),
			HackathonID: hackathonID,
			TemplateID:  template.ID,
			CreateTime:  template.CreateTime,
			UpdateTime:  template.UpdateTime,
		}
		return tx.Create(rel).Error
	})
}

func (r *TemplateRepository) FindByID(id uuid.UUID) (*entity.Template, error) {
	var template entity.Template
	err := r.db.Where("id = ?", id).First(&template).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *TemplateRepository) FindByName(name string) (*entity.Template, error) {
	var template entity.Template
	err := r.db.Where("name = ?", name).First(&template).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *TemplateRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Template{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *TemplateRepository) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	return r.db.Model(&entity.Template{}).Where("id = ?", id).Updates(fields).Error
}

func (r *TemplateRepository) FindByStatus(status string) ([]entity.Template, error) {
	var templates []entity.Template
	err := r.db.Where("status = ?", status).Order("create_time DESC").Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *TemplateRepository) FindByHackathonID(hackathonID uuid.UUID) ([]entity.Template, error) {
	var templates []entity.Template
	err := r.db.Model(&entity.Template{}).
		Joins("JOIN hackathon_template_rels ON hackathon_template_rels.template_id = templates.id").
		Where("hackathon_template_rels.hackathon_id = ?", hackathonID).
		Order("templates.create_time DESC").
		Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}
