package database

import (
	"time"

	"github.com/FijacksProp/portfolio/models"
	"gorm.io/gorm"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// Add inserts a new contact message. CreatedAt is assigned by the store at
// insertion; anything the caller put there is discarded. Contacts are never
// updated after creation, so there is no Update method.
func (r *ContactRepo) Add(contact *models.Contact) error {
	contact.CreatedAt = time.Time{}
	return r.db.Create(contact).Error
}

// FindAll returns contact messages ordered and truncated per opts
func (r *ContactRepo) FindAll(opts ListOptions) ([]*models.Contact, error) {
	var contacts []*models.Contact
	err := opts.apply(r.db).Find(&contacts).Error
	return contacts, err
}
