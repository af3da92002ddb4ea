package hackathon

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tnqbao/gau-hackathon-service/entity"
)

// Detail is a hackathon with everything a client shows next to it.
type Detail struct {
	Hackathon    *entity.Hackathon           `json:"hackathon"`
	Config       map[string]string           `json:"config"`
	Stat         *Stat                       `json:"stat"`
	Tag          string                      `json:"tag"`
	Organizers   []entity.HackathonOrganizer `json:"organizer"`
	Like         *entity.HackathonLike       `json:"like,omitempty"`
	Registration *entity.UserHackathonRel    `json:"registration,omitempty"`
}

// GetDetail assembles the hackathon detail. The like and registration of the
// user are included when userID is set.
func (m *Manager) GetDetail(ctx context.Context, hackathon *entity.Hackathon, userID *uuid.UUID) (*Detail, error) {
	configs, err := m.GetConfigs(ctx, hackathon)
	if err != nil {
		return nil, err
	}
	stat, err := m.GetStat(ctx, hackathon)
	if err != nil {
		return nil, err
	}
	tags, err := m.GetTags(ctx, hackathon)
	if err != nil {
		return nil, err
	}
	organizers, err := m.stores.Organizers.FindByHackathonID(hackathon.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read organizers of %s: %w", hackathon.Name, err)
	}

	detail := &Detail{
		Hackathon:  hackathon,
		Config:     configs,
		Stat:       stat,
		Tag:        tags,
		Organizers: organizers,
	}
	if userID == nil {
		return detail, nil
	}

	like, err := m.stores.Likes.Find(*userID, hackathon.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to read like of %s: %w", hackathon.Name, err)
	}
	detail.Like = like

	registration, err := m.stores.Registrations.FindByUserAndHackathon(*userID, hackathon.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to read registration of %s: %w", hackathon.Name, err)
	}
	detail.Registration = registration
	return detail, nil
}
