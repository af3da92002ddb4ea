// Package cloudservice reconciles a named cloud service at the provider with
// the resource registry.
package cloudservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/tnqbao/gau-hackathon-service/entity"
	"github.com/tnqbao/gau-hackathon-service/service"
)

//go:generate go run go.uber.org/mock/mockgen -package cloudservice -destination package_mock_test.go github.com/tnqbao/gau-hackathon-service/service/cloudservice Provider,Registry,AuditLog

const OperationCreateCloudService = "create_cloud_service"

// State is where a cloud service stands when provider and registry are
// compared.
type State string

const (
	// StateAbsent: unknown to the provider and to the registry.
	StateAbsent State = "ABSENT"
	// StateStaleRecord: registry rows left behind by an earlier attempt, no
	// service at the provider.
	StateStaleRecord State = "STALE_RECORD"
	// StateAdopted: the provider has the service but nothing recorded it.
	StateAdopted State = "ADOPTED"
	// StateRunning: both sides agree.
	StateRunning State = "RUNNING"
)

// Classify maps the provider view and the registry row count to a State.
func Classify(existsAtProvider bool, registryRows int64) State {
	switch {
	case !existsAtProvider && registryRows == 0:
		return StateAbsent
	case !existsAtProvider:
		return StateStaleRecord
	case registryRows == 0:
		return StateAdopted
	default:
		return StateRunning
	}
}

type Provider interface {
	// Exists returns (false, nil) when the provider reports not found.
	Exists(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, name, label, location string) error
}

type Registry interface {
	CountByTypeAndName(resourceType, name string) (int64, error)
	DeleteCloudServiceCascade(name string) error
	Create(resource *entity.UserResource) error
}

type AuditLog interface {
	Create(operation *entity.UserOperation) error
}

type Descriptor struct {
	ServiceName string
	Label       string
	Location    string
}

type Provisioner struct {
	provider Provider
	registry Registry
	audit    AuditLog
	logger   service.Logger
	tracer   trace.Tracer
	outcomes metric.Int64Counter
	now      func() time.Time
}

func NewProvisioner(provider Provider, registry Registry, audit AuditLog, logger service.Logger, tracer trace.Tracer, meter metric.Meter) (*Provisioner, error) {
	outcomes, err := meter.Int64Counter(
		"cloud_service.reconcile",
		metric.WithDescription("Cloud service reconciliations by starting state and result"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create reconcile counter: %w", err)
	}

	return &Provisioner{
		provider: provider,
		registry: registry,
		audit:    audit,
		logger:   logger,
		tracer:   tracer,
		outcomes: outcomes,
		now:      time.Now,
	}, nil
}

// Ensure makes sure the cloud service described by desc exists at the
// provider and is recorded exactly once in the registry. Every path writes
// an audit entry; a nil error means success.
func (p *Provisioner) Ensure(ctx context.Context, template *entity.Template, desc Descriptor) error {
	ctx, span := p.tracer.Start(ctx, "cloudservice.Ensure", trace.WithAttributes(
		attribute.String("cloud_service.name", desc.ServiceName),
	))
	defer span.End()

	var templateID *uuid.UUID
	if template != nil {
		id := template.ID
		templateID = &id
	}

	p.record(ctx, templateID, entity.OperationStatusStart, "")

	exists := p.exists(ctx, desc.ServiceName)
	rows, err := p.registry.CountByTypeAndName(entity.ResourceTypeCloudService, desc.ServiceName)
	if err != nil {
		p.record(ctx, templateID, entity.OperationStatusFail, err.Error())
		p.finish(ctx, span, "", err)
		return fmt.Errorf("failed to count registry rows for %s: %w", desc.ServiceName, err)
	}

	state := Classify(exists, rows)
	span.SetAttributes(attribute.String("cloud_service.state", string(state)))
	p.logger.InfoWithContextf(ctx, "[CloudService] %s is %s (provider=%t, rows=%d)", desc.ServiceName, state, exists, rows)

	switch state {
	case StateAbsent, StateStaleRecord:
		err = p.create(ctx, templateID, desc)
	case StateAdopted:
		err = p.adopt(ctx, templateID, desc.ServiceName)
	default:
		p.record(ctx, templateID, entity.OperationStatusEnd,
			fmt.Sprintf("cloud service %s exist and created by this service before", desc.ServiceName))
	}

	p.finish(ctx, span, state, err)
	return err
}

func (p *Provisioner) create(ctx context.Context, templateID *uuid.UUID, desc Descriptor) error {
	name := desc.ServiceName

	if err := p.registry.DeleteCloudServiceCascade(name); err != nil {
		p.record(ctx, templateID, entity.OperationStatusFail, err.Error())
		return fmt.Errorf("failed to purge stale records of %s: %w", name, err)
	}

	if err := p.provider.Create(ctx, name, desc.Label, desc.Location); err != nil {
		p.logger.ErrorWithContextf(ctx, err, "[CloudService] Failed to create %s: %v", name, err)
		p.record(ctx, templateID, entity.OperationStatusFail, err.Error())
		return fmt.Errorf("%w: create cloud service %s: %v", service.ErrProvider, name, err)
	}

	if !p.exists(ctx, name) {
		note := fmt.Sprintf("cloud service %s created but not exist", name)
		p.logger.ErrorWithContextf(ctx, nil, "[CloudService] %s", note)
		p.record(ctx, templateID, entity.OperationStatusFail, note)
		return fmt.Errorf("%w: %s", service.ErrProvider, note)
	}

	if err := p.addRunning(templateID, name); err != nil {
		p.record(ctx, templateID, entity.OperationStatusFail, err.Error())
		return fmt.Errorf("failed to record cloud service %s: %w", name, err)
	}

	p.record(ctx, templateID, entity.OperationStatusEnd, fmt.Sprintf("cloud service %s created", name))
	return nil
}

func (p *Provisioner) adopt(ctx context.Context, templateID *uuid.UUID, name string) error {
	if err := p.addRunning(templateID, name); err != nil {
		p.record(ctx, templateID, entity.OperationStatusFail, err.Error())
		return fmt.Errorf("failed to record cloud service %s: %w", name, err)
	}

	note := fmt.Sprintf("cloud service %s exist but not created by this service before", name)
	p.logger.InfoWithContextf(ctx, "[CloudService] %s", note)
	p.record(ctx, templateID, entity.OperationStatusEnd, note)
	return nil
}

// exists treats every provider error as absence. Not found is expected and
// stays quiet, anything else is logged.
func (p *Provisioner) exists(ctx context.Context, name string) bool {
	ok, err := p.provider.Exists(ctx, name)
	if err != nil {
		p.logger.ErrorWithContextf(ctx, err, "[CloudService] Existence check of %s failed, treating as absent: %v", name, err)
		return false
	}
	return ok
}

func (p *Provisioner) addRunning(templateID *uuid.UUID, name string) error {
	now := p.now()
	return p.registry.Create(&entity.UserResource{
		ID:         uuid.New(),
		Type:       entity.ResourceTypeCloudService,
		Name:       name,
		Status:     entity.ResourceStatusRunning,
		TemplateID: templateID,
		CreateTime: now,
		UpdateTime: now,
	})
}

func (p *Provisioner) record(ctx context.Context, templateID *uuid.UUID, status, note string) {
	err := p.audit.Create(&entity.UserOperation{
		ID:         uuid.New(),
		TemplateID: templateID,
		Operation:  OperationCreateCloudService,
		Status:     status,
		Note:       note,
		CreateTime: p.now(),
	})
	if err != nil {
		p.logger.ErrorWithContextf(ctx, err, "[CloudService] Failed to write %s audit entry: %v", status, err)
	}
}

func (p *Provisioner) finish(ctx context.Context, span trace.Span, state State, err error) {
	result := "success"
	if err != nil {
		result = "failure"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	p.outcomes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("state", string(state)),
		attribute.String("result", result),
	))
}
