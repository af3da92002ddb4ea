package hackathon

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tnqbao/gau-hackathon-service/entity"
	"github.com/tnqbao/gau-hackathon-service/service"
)

type OrganizerArgs struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Homepage    string `json:"homepage"`
	Logo        string `json:"logo"`
}

// OrganizerUpdate holds the submitted fields. Nil means unchanged.
type OrganizerUpdate struct {
	ID          uuid.UUID `json:"id"`
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Homepage    *string   `json:"homepage"`
	Logo        *string   `json:"logo"`
}

func newID() uuid.UUID {
	return uuid.New()
}

func (m *Manager) GetOrganizer(_ context.Context, id uuid.UUID) (*entity.HackathonOrganizer, error) {
	organizer, err := m.stores.Organizers.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.NewNotFoundError("organizer %s not found", id)
		}
		return nil, fmt.Errorf("failed to load organizer %s: %w", id, err)
	}
	return organizer, nil
}

func (m *Manager) CreateOrganizer(ctx context.Context, hackathon *entity.Hackathon, args OrganizerArgs) (*entity.HackathonOrganizer, error) {
	if args.Name == "" {
		return nil, service.NewValidationError("organizer name is required")
	}

	now := m.now()
	organizer := &entity.HackathonOrganizer{
		ID:          newID(),
		HackathonID: hackathon.ID,
		Name:        args.Name,
		Description: args.Description,
		Homepage:    args.Homepage,
		Logo:        args.Logo,
		CreateTime:  now,
		UpdateTime:  now,
	}
	if err := m.stores.Organizers.Create(organizer); err != nil {
		m.logger.ErrorWithContextf(ctx, err, "[Hackathon] Failed to add organizer to %s: %v", hackathon.Name, err)
		return nil, fmt.Errorf("failed to create organizer: %w", err)
	}
	return organizer, nil
}

// UpdateOrganizer changes an organizer of the hackathon. Organizers of other
// hackathons are forbidden.
func (m *Manager) UpdateOrganizer(ctx context.Context, hackathon *entity.Hackathon, args OrganizerUpdate) (*entity.HackathonOrganizer, error) {
	organizer, err := m.GetOrganizer(ctx, args.ID)
	if err != nil {
		return nil, err
	}
	if organizer.HackathonID != hackathon.ID {
		return nil, service.NewForbiddenError("organizer %s does not belong to %s", args.ID, hackathon.Name)
	}

	fields := map[string]interface{}{"update_time": m.now()}
	if args.Name != nil {
		fields["name"] = *args.Name
		organizer.Name = *args.Name
	}
	if args.Description != nil {
		fields["description"] = *args.Description
		organizer.Description = *args.Description
	}
	if args.Homepage != nil {
		fields["homepage"] = *args.Homepage
		organizer.Homepage = *args.Homepage
	}
	if args.Logo != nil {
		fields["logo"] = *args.Logo
		organizer.Logo = *args.Logo
	}

	if err := m.stores.Organizers.UpdateFields(organizer.ID, fields); err != nil {
		return nil, fmt.Errorf("failed to update organizer %s: %w", organizer.ID, err)
	}
	organizer.UpdateTime = fields["update_time"].(time.Time)
	return organizer, nil
}

func (m *Manager) DeleteOrganizer(_ context.Context, hackathon *entity.Hackathon, id uuid.UUID) error {
	if err := m.stores.Organizers.Delete(id, hackathon.ID); err != nil {
		return fmt.Errorf("failed to delete organizer %s: %w", id, err)
	}
	return nil
}
