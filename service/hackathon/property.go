package hackathon

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/tnqbao/gau-hackathon-service/entity"
	"github.com/tnqbao/gau-hackathon-service/infra"
)

const configCacheTTL = 30 * time.Minute

// Property is one hackathon config entry.
type Property struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

func configCacheKey(hackathon *entity.Hackathon) string {
	return fmt.Sprintf("hackathon_config_%s", hackathon.ID)
}

// GetBasicProperty returns the stored value of key, or defaultValue when the
// hackathon has no such config.
func (m *Manager) GetBasicProperty(_ context.Context, hackathon *entity.Hackathon, key, defaultValue string) (string, error) {
	cfg, err := m.stores.Configs.FindByKey(hackathon.ID, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return defaultValue, nil
		}
		return "", fmt.Errorf("failed to read %s of hackathon %s: %w", key, hackathon.Name, err)
	}
	return cfg.Value, nil
}

func (m *Manager) GetAllProperties(_ context.Context, hackathon *entity.Hackathon) ([]entity.HackathonConfig, error) {
	configs, err := m.stores.Configs.FindByHackathonID(hackathon.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read configs of hackathon %s: %w", hackathon.Name, err)
	}
	return configs, nil
}

// SetBasicProperty upserts every property and drops the cached config map.
func (m *Manager) SetBasicProperty(ctx context.Context, hackathon *entity.Hackathon, properties ...Property) error {
	now := m.now()
	for _, prop := range properties {
		if prop.Key == "" {
			continue
		}
		if err := m.stores.Configs.Upsert(hackathon.ID, prop.Key, prop.Value, now); err != nil {
			m.logger.ErrorWithContextf(ctx, err, "[Hackathon] Failed to set %s on %s: %v", prop.Key, hackathon.Name, err)
			return fmt.Errorf("failed to set %s of hackathon %s: %w", prop.Key, hackathon.Name, err)
		}
	}
	m.invalidate(ctx, configCacheKey(hackathon))
	return nil
}

func (m *Manager) DeleteProperty(ctx context.Context, hackathon *entity.Hackathon, key string) error {
	if err := m.stores.Configs.DeleteByKey(hackathon.ID, key); err != nil {
		return fmt.Errorf("failed to delete %s of hackathon %s: %w", key, hackathon.Name, err)
	}
	m.invalidate(ctx, configCacheKey(hackathon))
	return nil
}

// GetConfigs returns every config of the hackathon as a key/value map,
// served from the cache when present.
func (m *Manager) GetConfigs(ctx context.Context, hackathon *entity.Hackathon) (map[string]string, error) {
	key := configCacheKey(hackathon)

	configs := map[string]string{}
	if m.fromCache(ctx, key, &configs) {
		return configs, nil
	}

	rows, err := m.stores.Configs.FindByHackathonID(hackathon.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read configs of hackathon %s: %w", hackathon.Name, err)
	}
	for _, row := range rows {
		configs[row.Key] = row.Value
	}

	m.toCache(ctx, key, configs, configCacheTTL)
	return configs, nil
}

// fromCache reports whether key was found and decoded into dest. Cache
// errors other than a miss are logged and treated as a miss.
func (m *Manager) fromCache(ctx context.Context, key string, dest interface{}) bool {
	err := m.cache.Get(ctx, key, dest)
	if err == nil {
		return true
	}
	if !errors.Is(err, infra.ErrCacheMiss) {
		m.logger.WarningWithContextf(ctx, "[Hackathon] Cache read of %s failed: %v", key, err)
	}
	return false
}

func (m *Manager) toCache(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if err := m.cache.Set(ctx, key, value, ttl); err != nil {
		m.logger.WarningWithContextf(ctx, "[Hackathon] Cache write of %s failed: %v", key, err)
	}
}

func (m *Manager) invalidate(ctx context.Context, keys ...string) {
	if err := m.cache.Delete(ctx, keys...); err != nil {
		m.logger.WarningWithContextf(ctx, "[Hackathon] Cache invalidation of %v failed: %v", keys, err)
	}
}
