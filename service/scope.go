package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/tnqbao/gau-hackathon-service/entity"
)

// Scope carries the caller and the hackathon a request acts on. It is built
// by the HTTP layer and passed to every service call that needs it.
type Scope struct {
	UserID    uuid.UUID
	Hackathon *entity.Hackathon
}

func NewScope(userID uuid.UUID, hackathon *entity.Hackathon) Scope {
	return Scope{UserID: userID, Hackathon: hackathon}
}

func (s Scope) HackathonID() *uuid.UUID {
	if s.Hackathon == nil {
		return nil
	}
	id := s.Hackathon.ID
	return &id
}

func (s Scope) HackathonName() string {
	if s.Hackathon == nil {
		return ""
	}
	return s.Hackathon.Name
}

// Logger is the logging surface services need. infra.LoggerClient satisfies it.
type Logger interface {
	InfoWithContextf(ctx context.Context, format string, args ...interface{})
	DebugWithContextf(ctx context.Context, format string, args ...interface{})
	WarningWithContextf(ctx context.Context, format string, args ...interface{})
	ErrorWithContextf(ctx context.Context, err error, format string, args ...interface{})
}
