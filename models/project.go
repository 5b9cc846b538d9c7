package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectType classifies what kind of deliverable a project is.
type ProjectType string

const (
	ProjectTypeWebApp    ProjectType = "web_app"
	ProjectTypeMobileApp ProjectType = "mobile_app"
	ProjectTypeAPI       ProjectType = "api"
	ProjectTypeFullStack ProjectType = "full_stack"
	ProjectTypeOther     ProjectType = "other"
)

var projectTypeLabels = map[ProjectType]string{
	ProjectTypeWebApp:    "Web Application",
	ProjectTypeMobileApp: "Mobile Application",
	ProjectTypeAPI:       "API/Backend",
	ProjectTypeFullStack: "Full-Stack Solution",
	ProjectTypeOther:     "Other",
}

// Label returns the human-readable name for the project type.
func (t ProjectType) Label() string {
	return projectTypeLabels[t]
}

func (t ProjectType) Valid() bool {
	_, ok := projectTypeLabels[t]
	return ok
}

// ProjectStatus tracks where a project is in its lifecycle.
type ProjectStatus string

const (
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusPlanned    ProjectStatus = "planned"
)

var projectStatusLabels = map[ProjectStatus]string{
	ProjectStatusCompleted:  "Completed",
	ProjectStatusInProgress: "In Progress",
	ProjectStatusPlanned:    "Planned",
}

// Label returns the human-readable name for the status.
func (s ProjectStatus) Label() string {
	return projectStatusLabels[s]
}

func (s ProjectStatus) Valid() bool {
	_, ok := projectStatusLabels[s]
	return ok
}

// Project represents a portfolio entry.
//
// Slug is unique across all projects and derived from the title by the store
// whenever it is empty; a non-empty slug is never rewritten. Image is a
// reference into an external asset host, never image bytes.
type Project struct {
	ID               uuid.UUID     `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title            string        `json:"title" db:"title" gorm:"type:varchar(200);not null"`
	Slug             string        `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Description      string        `json:"description" db:"description" gorm:"type:text"`
	ShortDescription string        `json:"short_description" db:"short_description" gorm:"type:varchar(300)"`
	Technologies     string        `json:"technologies" db:"technologies" gorm:"type:varchar(500)"` // comma-separated
	Type             ProjectType   `json:"project_type" db:"project_type" gorm:"column:project_type;type:varchar(20);not null;default:web_app"`
	Status           ProjectStatus `json:"status" db:"status" gorm:"type:varchar(20);not null;default:completed"`
	Image            string        `json:"image" db:"image" gorm:"type:text"`
	DemoURL          *string       `json:"demo_url,omitempty" db:"demo_url" gorm:"type:text"`
	GithubURL        *string       `json:"github_url,omitempty" db:"github_url" gorm:"type:text"`
	Featured         bool          `json:"featured" db:"featured" gorm:"not null;default:false"`
	CompletionDate   *time.Time    `json:"completion_date,omitempty" db:"completion_date" gorm:"type:date"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time     `json:"updated_at" db:"updated_at" gorm:"autoUpdateTime"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// BeforeSave fills in the enum defaults so callers can leave them zero.
func (p *Project) BeforeSave(tx *gorm.DB) error {
	if p.Type == "" {
		p.Type = ProjectTypeWebApp
	}
	if p.Status == "" {
		p.Status = ProjectStatusCompleted
	}
	return nil
}

// TechList splits the comma-separated technologies field into trimmed names.
// Empty pieces from doubled or trailing commas are preserved as-is.
func (p *Project) TechList() []string {
	pieces := strings.Split(p.Technologies, ",")
	list := make([]string, len(pieces))
	for i, piece := range pieces {
		list[i] = strings.TrimSpace(piece)
	}
	return list
}
