package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	OperationStatusStart = "START"
	OperationStatusEnd   = "END"
	OperationStatusFail  = "FAIL"
)

// UserOperation is an append-only audit record of a provisioning step.
type UserOperation struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	TemplateID *uuid.UUID `json:"template_id,omitempty" gorm:"type:uuid;index"`
	Operation  string     `json:"operation" gorm:"not null"`
	Status     string     `json:"status" gorm:"not null"`
	Note       string     `json:"note"`
	CreateTime time.Time  `json:"create_time" gorm:"not null"`
}
