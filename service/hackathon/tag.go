package hackathon

import (
	"context"
	"fmt"
	"strings"

	"github.com/tnqbao/gau-hackathon-service/entity"
)

// GetTags returns the tags of the hackathon joined with commas.
func (m *Manager) GetTags(_ context.Context, hackathon *entity.Hackathon) (string, error) {
	rows, err := m.stores.Tags.FindByHackathonID(hackathon.ID)
	if err != nil {
		return "", fmt.Errorf("failed to read tags of %s: %w", hackathon.Name, err)
	}

	tags := make([]string, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, row.Tag)
	}
	return strings.Join(tags, ","), nil
}

// SetTags replaces the hackathon tags. Surrounding quotes are stripped.
func (m *Manager) SetTags(ctx context.Context, hackathon *entity.Hackathon, tags []string) error {
	now := m.now()
	rows := make([]entity.HackathonTag, 0, len(tags))
	for _, tag := range tags {
		tag = strings.Trim(strings.Trim(tag, `"`), "'")
		if tag == "" {
			continue
		}
		rows = append(rows, entity.HackathonTag{
			ID:          newID(),
			HackathonID: hackathon.ID,
			Tag:         tag,
			CreateTime:  now,
		})
	}

	if err := m.stores.Tags.Replace(hackathon.ID, rows); err != nil {
		m.logger.ErrorWithContextf(ctx, err, "[Hackathon] Failed to set tags of %s: %v", hackathon.Name, err)
		return fmt.Errorf("failed to set tags of %s: %w", hackathon.Name, err)
	}
	return nil
}

func (m *Manager) GetDistinctTags(_ context.Context) ([]string, error) {
	tags, err := m.stores.Tags.Distinct()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}
