package database

import (
	"github.com/FijacksProp/portfolio/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// FindAll returns skills ordered and truncated per opts
func (r *SkillRepo) FindAll(opts ListOptions) ([]*models.Skill, error) {
	var skills []*models.Skill
	err := opts.apply(r.db).Find(&skills).Error
	return skills, err
}

// FindByID returns a skill by its ID
func (r *SkillRepo) FindByID(id uuid.UUID) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// Add inserts a new skill into the database
func (r *SkillRepo) Add(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// Update saves an existing skill. Returns gorm.ErrRecordNotFound when the id
// is absent.
func (r *SkillRepo) Update(skill *models.Skill) error {
	var count int64
	if err := r.db.Model(&models.Skill{}).Where("id = ?", skill.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return r.db.Save(skill).Error
}

// Delete removes a skill from the database by id
func (r *SkillRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Skill{}, "id = ?", id).Error
}

// DeleteAll clears the skills table. Used only by data seeding.
func (r *SkillRepo) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Skill{}).Error
}
