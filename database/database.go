package database

import (
	"gorm.io/gorm"
)

type Database struct {
	contactRepo *ContactRepo
	projectRepo *ProjectRepo
	skillRepo   *SkillRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		contactRepo: NewContactRepo(db),
		projectRepo: NewProjectRepo(db),
		skillRepo:   NewSkillRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}
