package database

import (
	"github.com/FijacksProp/portfolio/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// slugRetryBudget bounds how many duplicate-key retries Add and Update make
// when concurrent writers race on the same derived slug. The unique index is
// the authority; the assigner just picks the next free suffix and tries again.
const slugRetryBudget = 3

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns projects ordered and truncated per opts
func (r *ProjectRepo) FindAll(opts ListOptions) ([]*models.Project, error) {
	var projects []*models.Project
	err := opts.apply(r.db).Find(&projects).Error
	return projects, err
}

// FindFeatured returns only projects flagged as featured
func (r *ProjectRepo) FindFeatured(opts ListOptions) ([]*models.Project, error) {
	var projects []*models.Project
	err := opts.apply(r.db.Where("featured = ?", true)).Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindBySlug returns a project by its slug
func (r *ProjectRepo) FindBySlug(slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project, deriving a slug from the title if none was
// supplied. A duplicate-key failure on a derived slug means another writer
// claimed it between derivation and commit; the slug is cleared and re-derived
// against the now-visible rows.
func (r *ProjectRepo) Add(project *models.Project) error {
	derived := project.Slug == ""
	for attempt := 0; ; attempt++ {
		if err := assignSlug(r.db, project); err != nil {
			return err
		}
		err := r.db.Create(project).Error
		if err == nil || !derived || !isDuplicateKey(err) || attempt >= slugRetryBudget {
			return err
		}
		project.Slug = ""
	}
}

// Update saves an existing project. The slug is re-derived only when the
// caller explicitly cleared it; otherwise it stays as stored even if the
// title changed. Returns gorm.ErrRecordNotFound when the id is absent.
func (r *ProjectRepo) Update(project *models.Project) error {
	var count int64
	if err := r.db.Model(&models.Project{}).Where("id = ?", project.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}

	derived := project.Slug == ""
	for attempt := 0; ; attempt++ {
		if err := assignSlug(r.db, project); err != nil {
			return err
		}
		err := r.db.Save(project).Error
		if err == nil || !derived || !isDuplicateKey(err) || attempt >= slugRetryBudget {
			return err
		}
		project.Slug = ""
	}
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}

// DeleteAll clears the projects table. Used only by data seeding.
func (r *ProjectRepo) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Project{}).Error
}
