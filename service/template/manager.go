package template

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tnqbao/gau-hackathon-service/entity"
	"github.com/tnqbao/gau-hackathon-service/service"
)

//go:generate go run go.uber.org/mock/mockgen -package template -destination package_mock_test.go github.com/tnqbao/gau-hackathon-service/service/template TemplateStore,DockerHostStore,ArtifactPublisher,Scheduler,BlobStore

var ErrPersist = errors.New("failed to save template")

type TemplateStore interface {
	ExistsByName(name string) (bool, error)
	FindByName(name string) (*entity.Template, error)
	FindByID(id uuid.UUID) (*entity.Template, error)
	Create(template *entity.Template) error
	CreateWithHackathon(template *entity.Template, hackathonID uuid.UUID) error
	UpdateFields(id uuid.UUID, fields map[string]interface{}) error
	FindByStatus(status string) ([]entity.Template, error)
	FindByHackathonID(hackathonID uuid.UUID) ([]entity.Template, error)
}

type DockerHostStore interface {
	FindByHackathonID(hackathonID uuid.UUID) ([]entity.DockerHostServer, error)
}

type ArtifactPublisher interface {
	Publish(ctx context.Context, hackathonName, localPath string) (string, error)
}

// Scheduler runs an image pull against a docker host at a later time.
type Scheduler interface {
	SchedulePullImage(ctx context.Context, dockerAPI, image string, runAt time.Time) error
}

type CreateArgs struct {
	Name                string                   `json:"name"`
	Description         string                   `json:"description"`
	Provider            string                   `json:"provider"`
	VirtualEnvironments []map[string]interface{} `json:"virtual_environments"`
}

// UpdateArgs holds the submitted fields. Nil means not submitted.
type UpdateArgs struct {
	Name                    string  `json:"name"`
	Description             *string `json:"description"`
	Provider                *string `json:"provider"`
	URL                     *string `json:"url"`
	Status                  *string `json:"status"`
	VirtualEnvironmentCount *int    `json:"virtual_environment_count"`
}

type Manager struct {
	templates TemplateStore
	hosts     DockerHostStore
	compiler  *Compiler
	publisher ArtifactPublisher
	scheduler Scheduler
	logger    service.Logger
	pullDelay time.Duration
	now       func() time.Time
}

func NewManager(templates TemplateStore, hosts DockerHostStore, compiler *Compiler, publisher ArtifactPublisher, scheduler Scheduler, logger service.Logger, pullDelay time.Duration) *Manager {
	return &Manager{
		templates: templates,
		hosts:     hosts,
		compiler:  compiler,
		publisher: publisher,
		scheduler: scheduler,
		logger:    logger,
		pullDelay: pullDelay,
		now:       time.Now,
	}
}

// Create validates, compiles, publishes and stores a template. Stages run in
// order and the first failure stops the pipeline; artifacts already
// published are left in place.
func (m *Manager) Create(ctx context.Context, scope service.Scope, args CreateArgs) (*entity.Template, error) {
	if err := m.validateCreate(args); err != nil {
		return nil, err
	}

	provider := args.Provider
	if provider == "" {
		provider = entity.TemplateProviderDocker
	}
	if provider != entity.TemplateProviderDocker && provider != entity.TemplateProviderAzure {
		return nil, service.NewValidationError("unsupported template provider %s", provider)
	}

	compiled, err := m.compiler.Compile(args.Name, args.Description, args.VirtualEnvironments)
	if err != nil {
		m.logger.WarningWithContextf(ctx, "[Template] Rejected template %s: %v", args.Name, err)
		return nil, err
	}

	localPath, err := m.compiler.WriteFile(compiled)
	if err != nil {
		m.logger.ErrorWithContextf(ctx, err, "[Template] Failed to write template %s: %v", args.Name, err)
		return nil, fmt.Errorf("failed to save template file: %w", err)
	}
	defer os.Remove(localPath)

	url, err := m.publisher.Publish(ctx, scope.HackathonName(), localPath)
	if err != nil {
		return nil, err
	}

	now := m.now()
	tpl := &entity.Template{
		ID:                      uuid.New(),
		Name:                    args.Name,
		URL:                     url,
		Provider:                provider,
		Status:                  entity.TemplateStatusOnline,
		VirtualEnvironmentCount: len(compiled.VirtualEnvironments),
		Description:             args.Description,
		HackathonID:             scope.HackathonID(),
		CreatorID:               scope.UserID,
		CreateTime:              now,
		UpdateTime:              now,
	}

	if scope.Hackathon != nil {
		err = m.templates.CreateWithHackathon(tpl, scope.Hackathon.ID)
	} else {
		err = m.templates.Create(tpl)
	}
	if err != nil {
		m.logger.ErrorWithContextf(ctx, err, "[Template] Published %s but failed to save it: %v", url, err)
		return nil, fmt.Errorf("%w: %v", ErrPersist, err)
	}

	m.logger.InfoWithContextf(ctx, "[Template] Created template %s (%s)", tpl.Name, tpl.ID)
	return tpl, nil
}

func (m *Manager) validateCreate(args CreateArgs) error {
	if strings.TrimSpace(args.Name) == "" {
		return service.NewValidationError("template name is required")
	}
	exists, err := m.templates.ExistsByName(args.Name)
	if err != nil {
		return fmt.Errorf("failed to check template name: %w", err)
	}
	if exists {
		return service.NewValidationError("template with the same name exists")
	}
	return nil
}

// Update writes the submitted fields that differ from the stored row, plus
// update_time. Name, creator and creation time never change.
func (m *Manager) Update(ctx context.Context, args UpdateArgs) (*entity.Template, error) {
	if strings.TrimSpace(args.Name) == "" {
		return nil, service.NewValidationError("template name is required")
	}

	current, err := m.templates.FindByName(args.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.NewValidationError("template %s does not exist", args.Name)
		}
		return nil, fmt.Errorf("failed to load template %s: %w", args.Name, err)
	}

	if args.Status != nil && *args.Status != entity.TemplateStatusOnline && *args.Status != entity.TemplateStatusOffline {
		return nil, service.NewValidationError("invalid template status %s", *args.Status)
	}
	if args.Provider != nil && *args.Provider != entity.TemplateProviderDocker && *args.Provider != entity.TemplateProviderAzure {
		return nil, service.NewValidationError("unsupported template provider %s", *args.Provider)
	}

	fields := diffTemplate(current, args)
	now := m.now()
	fields["update_time"] = now

	if err := m.templates.UpdateFields(current.ID, fields); err != nil {
		m.logger.ErrorWithContextf(ctx, err, "[Template] Failed to update template %s: %v", args.Name, err)
		return nil, fmt.Errorf("failed to update template %s: %w", args.Name, err)
	}

	applyTemplateFields(current, fields)
	return current, nil
}

func diffTemplate(current *entity.Template, args UpdateArgs) map[string]interface{} {
	fields := map[string]interface{}{}
	if args.Description != nil && *args.Description != current.Description {
		fields["description"] = *args.Description
	}
	if args.Provider != nil && *args.Provider != current.Provider {
		fields["provider"] = *args.Provider
	}
	if args.URL != nil && *args.URL != current.URL {
		fields["url"] = *args.URL
	}
	if args.Status != nil && *args.Status != current.Status {
		fields["status"] = *args.Status
	}
	if args.VirtualEnvironmentCount != nil && *args.VirtualEnvironmentCount != current.VirtualEnvironmentCount {
		fields["virtual_environment_count"] = *args.VirtualEnvironmentCount
	}
	return fields
}

func applyTemplateFields(tpl *entity.Template, fields map[string]interface{}) {
	for key, value := range fields {
		switch key {
		case "description":
			tpl.Description = value.(string)
		case "provider":
			tpl.Provider = value.(string)
		case "url":
			tpl.URL = value.(string)
		case "status":
			tpl.Status = value.(string)
		case "virtual_environment_count":
			tpl.VirtualEnvironmentCount = value.(int)
		case "update_time":
			tpl.UpdateTime = value.(time.Time)
		}
	}
}

// Delete takes the template offline. The row is kept.
func (m *Manager) Delete(ctx context.Context, id uuid.UUID) error {
	tpl, err := m.Get(ctx, id)
	if err != nil {
		return err
	}

	err = m.templates.UpdateFields(tpl.ID, map[string]interface{}{
		"status":      entity.TemplateStatusOffline,
		"update_time": m.now(),
	})
	if err != nil {
		m.logger.ErrorWithContextf(ctx, err, "[Template] Failed to take template %s offline: %v", tpl.Name, err)
		return fmt.Errorf("failed to delete template %s: %w", tpl.Name, err)
	}

	m.logger.InfoWithContextf(ctx, "[Template] Template %s is offline", tpl.Name)
	return nil
}

func (m *Manager) Get(_ context.Context, id uuid.UUID) (*entity.Template, error) {
	tpl, err := m.templates.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.NewNotFoundError("template %s not found", id)
		}
		return nil, fmt.Errorf("failed to load template %s: %w", id, err)
	}
	return tpl, nil
}

// List returns the templates bound to the scope hackathon, or every online
// template when the scope has none.
func (m *Manager) List(_ context.Context, scope service.Scope) ([]entity.Template, error) {
	if scope.Hackathon == nil {
		return m.templates.FindByStatus(entity.TemplateStatusOnline)
	}
	return m.templates.FindByHackathonID(scope.Hackathon.ID)
}

// PullImages schedules a pull of image on every docker host of the scope
// hackathon. Scheduling failures are logged and skipped. It returns the
// number of jobs scheduled.
func (m *Manager) PullImages(ctx context.Context, scope service.Scope, image string) (int, error) {
	if strings.TrimSpace(image) == "" {
		return 0, service.NewValidationError("image is required")
	}
	if scope.Hackathon == nil {
		return 0, service.NewValidationError("hackathon is required")
	}

	hosts, err := m.hosts.FindByHackathonID(scope.Hackathon.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to list docker hosts: %w", err)
	}

	runAt := m.now().Add(m.pullDelay)
	scheduled := 0
	for _, host := range hosts {
		dockerAPI := host.PublicDockerAPI()
		if err := m.scheduler.SchedulePullImage(ctx, dockerAPI, image, runAt); err != nil {
			m.logger.ErrorWithContextf(ctx, err, "[Template] Failed to schedule pull of %s on %s: %v", image, host.VMName, err)
			continue
		}
		scheduled++
	}

	m.logger.InfoWithContextf(ctx, "[Template] Scheduled pull of %s on %d/%d docker hosts", image, scheduled, len(hosts))
	return scheduled, nil
}
