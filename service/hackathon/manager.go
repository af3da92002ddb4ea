package hackathon

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tnqbao/gau-hackathon-service/entity"
	"github.com/tnqbao/gau-hackathon-service/repository"
	"github.com/tnqbao/gau-hackathon-service/service"
)

type HackathonStore interface {
	Create(hackathon *entity.Hackathon) error
	CreateWithAdmin(hackathon *entity.Hackathon, admin *entity.AdminHackathonRel) error
	FindByID(id uuid.UUID) (*entity.Hackathon, error)
	FindByName(name string) (*entity.Hackathon, error)
	ExistsByName(name string) (bool, error)
	FindByStatus(status string) ([]entity.Hackathon, error)
	FindAll() ([]entity.Hackathon, error)
	List(filter repository.HackathonFilter) ([]entity.Hackathon, int64, error)
	UpdateFields(id uuid.UUID, fields map[string]interface{}) error
}

type ConfigStore interface {
	FindByHackathonID(hackathonID uuid.UUID) ([]entity.HackathonConfig, error)
	FindByKey(hackathonID uuid.UUID, key string) (*entity.HackathonConfig, error)
	Upsert(hackathonID uuid.UUID, key, value string, now time.Time) error
	DeleteByKey(hackathonID uuid.UUID, key string) error
}

type StatStore interface {
	FindByHackathonID(hackathonID uuid.UUID) ([]entity.HackathonStat, error)
	SetCount(hackathonID uuid.UUID, statType string, count int64, now time.Time) error
	Increase(hackathonID uuid.UUID, statType string, delta int64, now time.Time) error
}

type TagStore interface {
	FindByHackathonID(hackathonID uuid.UUID) ([]entity.HackathonTag, error)
	Replace(hackathonID uuid.UUID, tags []entity.HackathonTag) error
	Distinct() ([]string, error)
}

type LikeStore interface {
	CreateIfAbsent(like *entity.HackathonLike) (bool, error)
	Find(userID, hackathonID uuid.UUID) (*entity.HackathonLike, error)
	Delete(userID, hackathonID uuid.UUID) error
	CountByHackathonID(hackathonID uuid.UUID) (int64, error)
}

type OrganizerStore interface {
	Create(organizer *entity.HackathonOrganizer) error
	FindByID(id uuid.UUID) (*entity.HackathonOrganizer, error)
	FindByHackathonID(hackathonID uuid.UUID) ([]entity.HackathonOrganizer, error)
	UpdateFields(id uuid.UUID, fields map[string]interface{}) error
	Delete(id, hackathonID uuid.UUID) error
}

type RegistrationStore interface {
	CountApprovedByOnline(hackathonID uuid.UUID, online bool) (int64, error)
	FindByUserAndHackathon(userID, hackathonID uuid.UUID) (*entity.UserHackathonRel, error)
}

// Cache is satisfied by infra.RedisClient.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Stores groups the tables the manager reads and writes.
type Stores struct {
	Hackathons    HackathonStore
	Configs       ConfigStore
	Stats         StatStore
	Tags          TagStore
	Likes         LikeStore
	Organizers    OrganizerStore
	Registrations RegistrationStore
}

// NewStores wires the manager to the gorm repositories.
func NewStores(repo *repository.Repository) Stores {
	return Stores{
		Hackathons:    repo.HackathonRepo,
		Configs:       repo.HackathonConfigRepo,
		Stats:         repo.HackathonStatRepo,
		Tags:          repo.HackathonTagRepo,
		Likes:         repo.HackathonLikeRepo,
		Organizers:    repo.HackathonOrganizerRepo,
		Registrations: repo.UserHackathonRelRepo,
	}
}

type CreateArgs struct {
	Name                  string     `json:"name" validate:"required,max=50"`
	DisplayName           string     `json:"display_name" validate:"required,max=64"`
	Description           string     `json:"description"`
	ShortDescription      string     `json:"short_description" validate:"max=200"`
	Ribbon                string     `json:"ribbon"`
	Banners               string     `json:"banners"`
	Location              string     `json:"location"`
	Type                  string     `json:"type" validate:"omitempty,oneof=HACKATHON CONTEST"`
	EventStartTime        *time.Time `json:"event_start_time"`
	EventEndTime          *time.Time `json:"event_end_time"`
	RegistrationStartTime *time.Time `json:"registration_start_time"`
	RegistrationEndTime   *time.Time `json:"registration_end_time"`
	JudgeStartTime        *time.Time `json:"judge_start_time"`
	JudgeEndTime          *time.Time `json:"judge_end_time"`
}

// UpdateArgs holds the submitted fields. Nil means not submitted.
type UpdateArgs struct {
	Name                  *string    `json:"name"`
	DisplayName           *string    `json:"display_name"`
	Description           *string    `json:"description"`
	ShortDescription      *string    `json:"short_description"`
	Ribbon                *string    `json:"ribbon"`
	Banners               *string    `json:"banners"`
	Location              *string    `json:"location"`
	Status                *string    `json:"status"`
	Type                  *string    `json:"type"`
	EventStartTime        *time.Time `json:"event_start_time"`
	EventEndTime          *time.Time `json:"event_end_time"`
	RegistrationStartTime *time.Time `json:"registration_start_time"`
	RegistrationEndTime   *time.Time `json:"registration_end_time"`
	JudgeStartTime        *time.Time `json:"judge_start_time"`
	JudgeEndTime          *time.Time `json:"judge_end_time"`
}

type Manager struct {
	stores   Stores
	cache    Cache
	logger   service.Logger
	validate *validator.Validate
	now      func() time.Time
}

func NewManager(stores Stores, cache Cache, logger service.Logger) *Manager {
	return &Manager{
		stores:   stores,
		cache:    cache,
		logger:   logger,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Policy returns the hackathon policy backed by this manager's properties.
func (m *Manager) Policy() *Policy {
	return NewPolicy(m)
}

func (m *Manager) IsNameExisted(_ context.Context, name string) (bool, error) {
	if name == "" {
		return false, nil
	}
	return m.stores.Hackathons.ExistsByName(name)
}

func (m *Manager) GetByName(_ context.Context, name string) (*entity.Hackathon, error) {
	if name == "" {
		return nil, service.NewNotFoundError("hackathon name is empty")
	}
	h, err := m.stores.Hackathons.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.NewNotFoundError("hackathon %s not found", name)
		}
		return nil, fmt.Errorf("failed to load hackathon %s: %w", name, err)
	}
	return h, nil
}

func (m *Manager) GetByID(_ context.Context, id uuid.UUID) (*entity.Hackathon, error) {
	h, err := m.stores.Hackathons.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.NewNotFoundError("hackathon %s not found", id)
		}
		return nil, fmt.Errorf("failed to load hackathon %s: %w", id, err)
	}
	return h, nil
}

type ListResult struct {
	Items   []Detail `json:"items"`
	Total   int64    `json:"total"`
	Page    int      `json:"page"`
	PerPage int      `json:"per_page"`
}

// List returns one page of hackathons with their details. userID may be nil
// for anonymous callers.
func (m *Manager) List(ctx context.Context, filter repository.HackathonFilter, userID *uuid.UUID) (*ListResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = 20
	}

	hackathons, total, err := m.stores.Hackathons.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list hackathons: %w", err)
	}

	result := &ListResult{
		Items:   make([]Detail, 0, len(hackathons)),
		Total:   total,
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}
	for i := range hackathons {
		detail, err := m.GetDetail(ctx, &hackathons[i], userID)
		if err != nil {
			return nil, err
		}
		result.Items = append(result.Items, *detail)
	}
	return result, nil
}

// Create stores a new hackathon in INIT status and makes the scope user its
// admin.
func (m *Manager) Create(ctx context.Context, scope service.Scope, args CreateArgs) (*entity.Hackathon, error) {
	args.Name = strings.TrimSpace(args.Name)
	if err := m.validate.Struct(args); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			fe := validationErrs[0]
			return nil, service.NewValidationError("field %s failed on '%s'", fe.Field(), fe.Tag())
		}
		return nil, service.NewValidationError("%v", err)
	}

	exists, err := m.stores.Hackathons.ExistsByName(args.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check hackathon name: %w", err)
	}
	if exists {
		return nil, service.NewConflictError("hackathon with name %s already exists", args.Name)
	}

	hackType := args.Type
	if hackType == "" {
		hackType = entity.HackathonTypeHackathon
	}

	now := m.now()
	h := &entity.Hackathon{
		ID:                    uuid.New(),
		Name:                  args.Name,
		DisplayName:           args.DisplayName,
		Description:           args.Description,
		ShortDescription:      args.ShortDescription,
		Ribbon:                args.Ribbon,
		Banners:               args.Banners,
		Location:              args.Location,
		Status:                entity.HackathonStatusInit,
		Type:                  hackType,
		CreatorID:             scope.UserID,
		EventStartTime:        args.EventStartTime,
		EventEndTime:          args.EventEndTime,
		RegistrationStartTime: args.RegistrationStartTime,
		RegistrationEndTime:   args.RegistrationEndTime,
		JudgeStartTime:        args.JudgeStartTime,
		JudgeEndTime:          args.JudgeEndTime,
		CreateTime:            now,
		UpdateTime:            now,
	}
	admin := &entity.AdminHackathonRel{
		UserID:     scope.UserID,
		RoleType:   entity.AdminRoleAdmin,
		Status:     entity.HackathonStatusInit,
		Remarks:    "creator",
		CreateTime: now,
	}

	if err := m.stores.Hackathons.CreateWithAdmin(h, admin); err != nil {
		m.logger.ErrorWithContextf(ctx, err, "[Hackathon] Failed to create hackathon %s: %v", args.Name, err)
		return nil, fmt.Errorf("failed to create hackathon %s: %w", args.Name, err)
	}

	m.logger.InfoWithContextf(ctx, "[Hackathon] Created hackathon %s by %s", h.Name, scope.UserID)
	return h, nil
}

// Update writes the submitted fields that differ from the stored hackathon,
// plus update_time. id, creator and creation time never change.
func (m *Manager) Update(ctx context.Context, hackathon *entity.Hackathon, args UpdateArgs) (*entity.Hackathon, error) {
	if hackathon == nil {
		return nil, service.NewValidationError("hackathon is required")
	}
	if args.Status != nil {
		switch *args.Status {
		case entity.HackathonStatusInit, entity.HackathonStatusOnline, entity.HackathonStatusOffline:
		default:
			return nil, service.NewValidationError("invalid hackathon status %s", *args.Status)
		}
	}

	fields := diffHackathon(hackathon, args)
	if name, ok := fields["name"].(string); ok {
		if strings.TrimSpace(name) == "" {
			return nil, service.NewValidationError("hackathon name is required")
		}
		exists, err := m.stores.Hackathons.ExistsByName(name)
		if err != nil {
			return nil, fmt.Errorf("failed to check hackathon name: %w", err)
		}
		if exists {
			return nil, service.NewConflictError("hackathon with name %s already exists", name)
		}
	}
	fields["update_time"] = m.now()

	if err := m.stores.Hackathons.UpdateFields(hackathon.ID, fields); err != nil {
		m.logger.ErrorWithContextf(ctx, err, "[Hackathon] Failed to update hackathon %s: %v", hackathon.Name, err)
		return nil, fmt.Errorf("failed to update hackathon %s: %w", hackathon.Name, err)
	}

	return m.GetByID(ctx, hackathon.ID)
}

func diffHackathon(current *entity.Hackathon, args UpdateArgs) map[string]interface{} {
	fields := map[string]interface{}{}
	diffString := func(column string, submitted *string, stored string) {
		if submitted != nil && *submitted != stored {
			fields[column] = *submitted
		}
	}
	diffTime := func(column string, submitted *time.Time, stored *time.Time) {
		if submitted == nil {
			return
		}
		if stored == nil || !submitted.Equal(*stored) {
			fields[column] = *submitted
		}
	}

	diffString("name", args.Name, current.Name)
	diffString("display_name", args.DisplayName, current.DisplayName)
	diffString("description", args.Description, current.Description)
	diffString("short_description", args.ShortDescription, current.ShortDescription)
	diffString("ribbon", args.Ribbon, current.Ribbon)
	diffString("banners", args.Banners, current.Banners)
	diffString("location", args.Location, current.Location)
	diffString("status", args.Status, current.Status)
	diffString("type", args.Type, current.Type)
	diffTime("event_start_time", args.EventStartTime, current.EventStartTime)
	diffTime("event_end_time", args.EventEndTime, current.EventEndTime)
	diffTime("registration_start_time", args.RegistrationStartTime, current.RegistrationStartTime)
	diffTime("registration_end_time", args.RegistrationEndTime, current.RegistrationEndTime)
	diffTime("judge_start_time", args.JudgeStartTime, current.JudgeStartTime)
	diffTime("judge_end_time", args.JudgeEndTime, current.JudgeEndTime)
	return fields
}

func (m *Manager) GetOnlineHackathons(_ context.Context) ([]entity.Hackathon, error) {
	hackathons, err := m.stores.Hackathons.FindByStatus(entity.HackathonStatusOnline)
	if err != nil {
		return nil, fmt.Errorf("failed to list online hackathons: %w", err)
	}
	return hackathons, nil
}

// GetPreAllocateEnabledHackathonIDs returns the ids of online hackathons
// that keep environments pre-allocated.
func (m *Manager) GetPreAllocateEnabledHackathonIDs(ctx context.Context) ([]uuid.UUID, error) {
	online, err := m.GetOnlineHackathons(ctx)
	if err != nil {
		return nil, err
	}

	policy := m.Policy()
	ids := make([]uuid.UUID, 0, len(online))
	for i := range online {
		enabled, err := policy.IsPreAllocateEnabled(ctx, &online[i])
		if err != nil {
			return nil, err
		}
		if enabled {
			ids = append(ids, online[i].ID)
		}
	}
	return ids, nil
}

func (m *Manager) GetRecyclableHackathons(ctx context.Context) ([]entity.Hackathon, error) {
	all, err := m.stores.Hackathons.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list hackathons: %w", err)
	}

	policy := m.Policy()
	recyclable := make([]entity.Hackathon, 0, len(all))
	for i := range all {
		enabled, err := policy.IsRecycleEnabled(ctx, &all[i])
		if err != nil {
			return nil, err
		}
		if enabled {
			recyclable = append(recyclable, all[i])
		}
	}
	return recyclable, nil
}
