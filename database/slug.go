package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/FijacksProp/portfolio/models"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// assignSlug derives a unique URL-safe slug from the project title when the
// slug is empty. A project that already carries a slug is left untouched, so
// the assigner is idempotent and a slug survives later title changes.
func assignSlug(db *gorm.DB, project *models.Project) error {
	if project.Slug != "" {
		return nil
	}

	base := slug.Make(project.Title)
	candidate := base
	for counter := 1; ; counter++ {
		taken, err := slugTaken(db, candidate, project.ID)
		if err != nil {
			return err
		}
		if !taken {
			break
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}

	project.Slug = candidate
	return nil
}

// slugTaken reports whether any other project already holds the candidate
// slug. The record's own id is excluded so updates don't collide with
// themselves.
func slugTaken(db *gorm.DB, candidate string, selfID uuid.UUID) (bool, error) {
	var count int64
	tx := db.Model(&models.Project{}).Where("slug = ?", candidate)
	if selfID != uuid.Nil {
		tx = tx.Where("id <> ?", selfID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// isDuplicateKey recognizes a unique-index violation across the drivers we
// run against (pgx reports "duplicate key", sqlite "UNIQUE constraint failed").
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "UNIQUE constraint failed")
}
