package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type DockerHostServer struct {
	ID                   uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	VMName               string     `json:"vm_name" gorm:"uniqueIndex;not null"`
	PublicDNS            string     `json:"public_dns"`
	PublicIP             string     `json:"public_ip"`
	PublicDockerAPIPort  int        `json:"public_docker_api_port" gorm:"default:4243"`
	PrivateIP            string     `json:"private_ip"`
	PrivateDockerAPIPort int        `json:"private_docker_api_port" gorm:"default:4243"`
	ContainerCount       int        `json:"container_count"`
	ContainerMaxCount    int        `json:"container_max_count" gorm:"default:100"`
	HackathonID          *uuid.UUID `json:"hackathon_id,omitempty" gorm:"type:uuid;index"`
	CreateTime           time.Time  `json:"create_time"`
	UpdateTime           time.Time  `json:"update_time"`
}

// PublicDockerAPI is the base URL of the docker remote API reachable from
// outside the host.
func (h *DockerHostServer) PublicDockerAPI() string {
	return fmt.Sprintf("http://%s:%d", h.PublicDNS, h.PublicDockerAPIPort)
}
