package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tnqbao/gau-hackathon-service/entity"
	"github.com/tnqbao/gau-hackathon-service/service"
)

//go:generate go run go.uber.org/mock/mockgen -package remote -destination package_mock_test.go github.com/tnqbao/gau-hackathon-service/service/remote EnvironmentStore

// EnvironmentStore is satisfied by repository.VirtualEnvironmentRepository.
type EnvironmentStore interface {
	FindFirstByNameStatusAndRemote(name, status, remoteProvider string) (*entity.VirtualEnvironment, error)
}

// Broker hands out the remote desktop connection parameters of a running
// virtual environment to its owner.
type Broker struct {
	environments EnvironmentStore
	logger       service.Logger
}

func NewBroker(environments EnvironmentStore, logger service.Logger) *Broker {
	return &Broker{environments: environments, logger: logger}
}

// GetConnectionInfo returns the stored remote parameters of the running
// guacamole environment called name.
func (b *Broker) GetConnectionInfo(ctx context.Context, userID uuid.UUID, name string) (map[string]interface{}, error) {
	if name == "" {
		return nil, service.NewValidationError("connection name is required")
	}

	ve, err := b.environments.FindFirstByNameStatusAndRemote(name, entity.VEStatusRunning, entity.VERemoteProviderGuacamole)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			b.logger.WarningWithContextf(ctx, "[Remote] No running environment %s", name)
			return nil, service.NewNotFoundError("virtual environment %s not found", name)
		}
		b.logger.ErrorWithContextf(ctx, err, "[Remote] Failed to load environment %s: %v", name, err)
		return nil, fmt.Errorf("failed to load virtual environment %s: %w", name, err)
	}

	if ve.Experiment == nil || ve.Experiment.UserID != userID {
		b.logger.WarningWithContextf(ctx, "[Remote] User %s is not the owner of %s", userID, name)
		return nil, service.NewForbiddenError("virtual environment %s belongs to another user", name)
	}

	paras := map[string]interface{}{}
	if len(ve.RemoteParas) == 0 {
		return paras, nil
	}
	if err := json.Unmarshal(ve.RemoteParas, &paras); err != nil {
		b.logger.ErrorWithContextf(ctx, err, "[Remote] Malformed remote parameters on %s: %v", name, err)
		return nil, fmt.Errorf("failed to decode remote parameters of %s: %w", name, err)
	}

	b.logger.DebugWithContextf(ctx, "[Remote] Connection info for %s served to %s", name, userID)
	return paras, nil
}
