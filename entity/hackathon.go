package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	HackathonStatusInit    = "INIT"
	HackathonStatusOnline  = "ONLINE"
	HackathonStatusOffline = "OFFLINE"
)

const (
	HackathonTypeHackathon = "HACKATHON"
	HackathonTypeContest   = "CONTEST"
)

const (
	HackathonStatTypeLike     = "LIKE"
	HackathonStatTypeRegister = "REGISTER"
)

// Hackathon config keys.
const (
	ConfigAutoApprove        = "auto_approve"
	ConfigPreAllocateEnabled = "pre_allocate_enabled"
	ConfigPreAllocateNumber  = "pre_allocate_number"
	ConfigRecycleEnabled     = "recycle_enabled"
	ConfigRecycleMinutes     = "recycle_minutes"
	ConfigAlaudaEnabled      = "alauda_enabled"
	ConfigFreedomTeam        = "freedom_team"
)

const (
	AdminRoleAdmin = "ADMIN"
	AdminRoleJudge = "JUDGE"
)

const (
	RegistrationStatusUnaudit      = "UNAUDIT"
	RegistrationStatusAuditPassed  = "AUDIT_PASSED"
	RegistrationStatusAuditRefused = "AUDIT_REFUSED"
	RegistrationStatusAutoPassed   = "AUTO_PASSED"
)

type Hackathon struct {
	ID                    uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name                  string     `json:"name" gorm:"uniqueIndex;not null"`
	DisplayName           string     `json:"display_name"`
	Description           string     `json:"description"`
	ShortDescription      string     `json:"short_description"`
	Ribbon                string     `json:"ribbon"`
	Banners               string     `json:"banners"`
	Location              string     `json:"location"`
	Status                string     `json:"status" gorm:"not null;index"`
	Type                  string     `json:"type"`
	CreatorID             uuid.UUID  `json:"creator_id" gorm:"type:uuid"`
	EventStartTime        *time.Time `json:"event_start_time,omitempty"`
	EventEndTime          *time.Time `json:"event_end_time,omitempty"`
	RegistrationStartTime *time.Time `json:"registration_start_time,omitempty"`
	RegistrationEndTime   *time.Time `json:"registration_end_time,omitempty"`
	JudgeStartTime        *time.Time `json:"judge_start_time,omitempty"`
	JudgeEndTime          *time.Time `json:"judge_end_time,omitempty"`
	CreateTime            time.Time  `json:"create_time" gorm:"not null"`
	UpdateTime            time.Time  `json:"update_time"`
}

type HackathonConfig struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	HackathonID uuid.UUID `json:"hackathon_id" gorm:"type:uuid;not null;index"`
	Key         string    `json:"key" gorm:"not null"`
	Value       string    `json:"value"`
	CreateTime  time.Time `json:"create_time"`
	UpdateTime  time.Time `json:"update_time"`
}

type HackathonStat struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	HackathonID uuid.UUID `json:"hackathon_id" gorm:"type:uuid;not null;index"`
	Type        string    `json:"type" gorm:"not null"`
	Count       int64     `json:"count"`
	UpdateTime  time.Time `json:"update_time"`
}

type HackathonTag struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	HackathonID uuid.UUID `json:"hackathon_id" gorm:"type:uuid;not null;index"`
	Tag         string    `json:"tag" gorm:"not null"`
	CreateTime  time.Time `json:"create_time"`
}

type HackathonLike struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	HackathonID uuid.UUID `json:"hackathon_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_like_user_hackathon"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_like_user_hackathon"`
	CreateTime  time.Time `json:"create_time"`
}

type HackathonOrganizer struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	HackathonID uuid.UUID `json:"hackathon_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Homepage    string    `json:"homepage"`
	Logo        string    `json:"logo"`
	CreateTime  time.Time `json:"create_time"`
	UpdateTime  time.Time `json:"update_time"`
}

type AdminHackathonRel struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	HackathonID uuid.UUID `json:"hackathon_id" gorm:"type:uuid;not null;index"`
	RoleType    string    `json:"role_type" gorm:"not null"`
	Status      string    `json:"status"`
	Remarks     string    `json:"remarks"`
	CreateTime  time.Time `json:"create_time"`
}

// UserHackathonRel is a registration of a user to a hackathon.
type UserHackathonRel struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	HackathonID uuid.UUID `json:"hackathon_id" gorm:"type:uuid;not null;index"`
	Status      string    `json:"status"`
	Deleted     bool      `json:"deleted"`
	CreateTime  time.Time `json:"create_time"`
}

type User struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string    `json:"name" gorm:"uniqueIndex;not null"`
	Nickname   string    `json:"nickname"`
	Online     bool      `json:"online"`
	CreateTime time.Time `json:"create_time"`
}
