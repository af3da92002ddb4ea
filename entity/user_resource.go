package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ResourceTypeCloudService   = "CLOUD_SERVICE"
	ResourceTypeDeployment     = "DEPLOYMENT"
	ResourceTypeVirtualMachine = "VIRTUAL_MACHINE"
)

const (
	ResourceStatusRunning = "RUNNING"
	ResourceStatusStopped = "STOPPED"
	ResourceStatusDeleted = "DELETED"
)

// UserResource is a row of the resource registry. Deployments and virtual
// machines point at their cloud service through CloudServiceID.
type UserResource struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Type           string     `json:"type" gorm:"not null;index:idx_user_resource_type_name"`
	Name           string     `json:"name" gorm:"not null;index:idx_user_resource_type_name"`
	Status         string     `json:"status" gorm:"not null"`
	TemplateID     *uuid.UUID `json:"template_id,omitempty" gorm:"type:uuid;index"`
	CloudServiceID *uuid.UUID `json:"cloud_service_id,omitempty" gorm:"type:uuid;index"`
	CreateTime     time.Time  `json:"create_time" gorm:"not null"`
	UpdateTime     time.Time  `json:"update_time"`
}

type VMEndpoint struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name             string    `json:"name"`
	Protocol         string    `json:"protocol"`
	PublicPort       int       `json:"public_port"`
	PrivatePort      int       `json:"private_port"`
	VirtualMachineID uuid.UUID `json:"virtual_machine_id" gorm:"type:uuid;not null;index"`
	CreateTime       time.Time `json:"create_time"`
}

type VMConfig struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	DNS              string         `json:"dns"`
	PublicIP         string         `json:"public_ip"`
	PrivateIP        string         `json:"private_ip"`
	RemoteProvider   string         `json:"remote_provider"`
	RemoteParas      datatypes.JSON `json:"remote_paras"`
	VirtualMachineID uuid.UUID      `json:"virtual_machine_id" gorm:"type:uuid;not null;index"`
	CreateTime       time.Time      `json:"create_time"`
}
