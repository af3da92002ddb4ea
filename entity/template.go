package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	TemplateStatusOnline  = "ONLINE"
	TemplateStatusOffline = "OFFLINE"
)

const (
	TemplateProviderDocker = "docker"
	TemplateProviderAzure  = "azure"
)

type Template struct {
	ID                      uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name                    string     `json:"name" gorm:"uniqueIndex;not null"`
	URL                     string     `json:"url"`
	Provider                string     `json:"provider" gorm:"not null"`
	Status                  string     `json:"status" gorm:"not null;index"`
	VirtualEnvironmentCount int        `json:"virtual_environment_count"`
	Description             string     `json:"description"`
	HackathonID             *uuid.UUID `json:"hackathon_id,omitempty" gorm:"type:uuid;index"`
	CreatorID               uuid.UUID  `json:"creator_id" gorm:"type:uuid"`
	CreateTime              time.Time  `json:"create_time" gorm:"not null"`
	UpdateTime              time.Time  `json:"update_time"`
}

type HackathonTemplateRel struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	HackathonID uuid.UUID `json:"hackathon_id" gorm:"type:uuid;not null;index"`
	TemplateID  uuid.UUID `json:"template_id" gorm:"type:uuid;not null;index"`
	Template    *Template `json:"template,omitempty" gorm:"foreignKey:TemplateID"`
	CreateTime  time.Time `json:"create_time"`
	UpdateTime  time.Time `json:"update_time"`
}
