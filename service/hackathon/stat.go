package hackathon

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tnqbao/gau-hackathon-service/entity"
)

const statCacheTTL = 5 * time.Minute

// Stat is the counters of a hackathon plus the online/offline split of its
// approved registrants.
type Stat struct {
	HackathonID uuid.UUID        `json:"hackathon_id"`
	Online      int64            `json:"online"`
	Offline     int64            `json:"offline"`
	Counts      map[string]int64 `json:"counts"`
}

func statCacheKey(hackathon *entity.Hackathon) string {
	return fmt.Sprintf("hackathon_stat_%s", hackathon.ID)
}

func (m *Manager) GetStat(ctx context.Context, hackathon *entity.Hackathon) (*Stat, error) {
	key := statCacheKey(hackathon)

	var cached Stat
	if m.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	stat, err := m.loadStat(hackathon)
	if err != nil {
		return nil, err
	}

	m.toCache(ctx, key, stat, statCacheTTL)
	return stat, nil
}

func (m *Manager) loadStat(hackathon *entity.Hackathon) (*Stat, error) {
	rows, err := m.stores.Stats.FindByHackathonID(hackathon.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read stats of hackathon %s: %w", hackathon.Name, err)
	}

	stat := &Stat{HackathonID: hackathon.ID, Counts: map[string]int64{}}
	for _, row := range rows {
		stat.Counts[row.Type] = row.Count
	}

	stat.Online, err = m.stores.Registrations.CountApprovedByOnline(hackathon.ID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to count online registrants of %s: %w", hackathon.Name, err)
	}
	stat.Offline, err = m.stores.Registrations.CountApprovedByOnline(hackathon.ID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to count offline registrants of %s: %w", hackathon.Name, err)
	}
	return stat, nil
}

// Like records that the user likes the hackathon. Liking twice is a no-op.
func (m *Manager) Like(ctx context.Context, userID uuid.UUID, hackathon *entity.Hackathon) error {
	now := m.now()
	created, err := m.stores.Likes.CreateIfAbsent(&entity.HackathonLike{
		UserID:      userID,
		HackathonID: hackathon.ID,
		CreateTime:  now,
	})
	if err != nil {
		return fmt.Errorf("failed to like %s: %w", hackathon.Name, err)
	}
	if !created {
		return nil
	}
	if err := m.stores.Stats.Increase(hackathon.ID, entity.HackathonStatTypeLike, 1, now); err != nil {
		return fmt.Errorf("failed to update like count of %s: %w", hackathon.Name, err)
	}

	m.invalidate(ctx, statCacheKey(hackathon))
	return nil
}

// Unlike removes the user's like and resyncs the LIKE counter with the
// actual number of likes.
func (m *Manager) Unlike(ctx context.Context, userID uuid.UUID, hackathon *entity.Hackathon) error {
	if err := m.stores.Likes.Delete(userID, hackathon.ID); err != nil {
		return fmt.Errorf("failed to unlike %s: %w", hackathon.Name, err)
	}

	count, err := m.stores.Likes.CountByHackathonID(hackathon.ID)
	if err != nil {
		return fmt.Errorf("failed to count likes of %s: %w", hackathon.Name, err)
	}
	if err := m.stores.Stats.SetCount(hackathon.ID, entity.HackathonStatTypeLike, count, m.now()); err != nil {
		return fmt.Errorf("failed to update like count of %s: %w", hackathon.Name, err)
	}

	m.invalidate(ctx, statCacheKey(hackathon))
	return nil
}
