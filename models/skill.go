package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillCategory is the display grouping for a skill.
type SkillCategory string

const (
	SkillCategoryFrontend  SkillCategory = "frontend"
	SkillCategoryBackend   SkillCategory = "backend"
	SkillCategoryDatabase  SkillCategory = "database"
	SkillCategoryExpanding SkillCategory = "expanding"
)

var skillCategoryLabels = map[SkillCategory]string{
	SkillCategoryFrontend:  "Frontend Development",
	SkillCategoryBackend:   "Backend Development",
	SkillCategoryDatabase:  "Database & Tools",
	SkillCategoryExpanding: "Expanding Ecosystem",
}

// Label returns the human-readable name for the category.
func (c SkillCategory) Label() string {
	return skillCategoryLabels[c]
}

func (c SkillCategory) Valid() bool {
	_, ok := skillCategoryLabels[c]
	return ok
}

// Skill represents a labeled competency. Order ranks skills manually within
// their category.
type Skill struct {
	ID          uuid.UUID     `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name        string        `json:"name" db:"name" gorm:"type:varchar(100);not null"`
	Category    SkillCategory `json:"category" db:"category" gorm:"type:varchar(20);not null"`
	Description string        `json:"description" db:"description" gorm:"type:varchar(200)"`
	Order       int           `json:"order" db:"order" gorm:"column:order;not null;default:0"`
}

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
