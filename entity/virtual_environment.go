package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	VEStatusInit    = "INIT"
	VEStatusRunning = "RUNNING"
	VEStatusStopped = "STOPPED"
	VEStatusDeleted = "DELETED"
)

const VERemoteProviderGuacamole = "guacamole"

type VirtualEnvironment struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string         `json:"name" gorm:"not null;index"`
	Provider       string         `json:"provider"`
	Status         string         `json:"status" gorm:"not null;index"`
	RemoteProvider string         `json:"remote_provider"`
	RemoteParas    datatypes.JSON `json:"remote_paras"`
	ExperimentID   uuid.UUID      `json:"experiment_id" gorm:"type:uuid;not null;index"`
	Experiment     *Experiment    `json:"experiment,omitempty" gorm:"foreignKey:ExperimentID"`
	CreateTime     time.Time      `json:"create_time"`
	UpdateTime     time.Time      `json:"update_time"`
}

type Experiment struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Status      string     `json:"status"`
	UserID      uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	HackathonID uuid.UUID  `json:"hackathon_id" gorm:"type:uuid;index"`
	TemplateID  *uuid.UUID `json:"template_id,omitempty" gorm:"type:uuid"`
	CreateTime  time.Time  `json:"create_time"`
	UpdateTime  time.Time  `json:"update_time"`
}
