package hackathon

import (
	"context"
	"strconv"
	"strings"

	"github.com/tnqbao/gau-hackathon-service/entity"
)

// PropertyReader is satisfied by Manager.
type PropertyReader interface {
	GetBasicProperty(ctx context.Context, hackathon *entity.Hackathon, key, defaultValue string) (string, error)
}

// Policy answers the per-hackathon switches stored as config properties.
type Policy struct {
	props PropertyReader
}

func NewPolicy(props PropertyReader) *Policy {
	return &Policy{props: props}
}

func (p *Policy) IsAutoApprove(ctx context.Context, hackathon *entity.Hackathon) (bool, error) {
	return p.boolProperty(ctx, hackathon, entity.ConfigAutoApprove, "1")
}

func (p *Policy) IsPreAllocateEnabled(ctx context.Context, hackathon *entity.Hackathon) (bool, error) {
	return p.boolProperty(ctx, hackathon, entity.ConfigPreAllocateEnabled, "1")
}

func (p *Policy) PreAllocateNumber(ctx context.Context, hackathon *entity.Hackathon) (int, error) {
	return p.intProperty(ctx, hackathon, entity.ConfigPreAllocateNumber, 1)
}

func (p *Policy) IsRecycleEnabled(ctx context.Context, hackathon *entity.Hackathon) (bool, error) {
	return p.boolProperty(ctx, hackathon, entity.ConfigRecycleEnabled, "false")
}

func (p *Policy) RecycleMinutes(ctx context.Context, hackathon *entity.Hackathon) (int, error) {
	return p.intProperty(ctx, hackathon, entity.ConfigRecycleMinutes, 60)
}

func (p *Policy) IsAlaudaEnabled(ctx context.Context, hackathon *entity.Hackathon) (bool, error) {
	return p.boolProperty(ctx, hackathon, entity.ConfigAlaudaEnabled, "false")
}

func (p *Policy) boolProperty(ctx context.Context, hackathon *entity.Hackathon, key, defaultValue string) (bool, error) {
	value, err := p.props.GetBasicProperty(ctx, hackathon, key, defaultValue)
	if err != nil {
		return false, err
	}
	return parseBool(value), nil
}

// intProperty falls back to defaultValue when the stored value is not a
// number.
func (p *Policy) intProperty(ctx context.Context, hackathon *entity.Hackathon, key string, defaultValue int) (int, error) {
	value, err := p.props.GetBasicProperty(ctx, hackathon, key, strconv.Itoa(defaultValue))
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue, nil
	}
	return n, nil
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	}
	return false
}
