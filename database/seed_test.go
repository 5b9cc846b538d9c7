package database

import (
	"testing"

	"github.com/FijacksProp/portfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedPopulatesFixedDataset(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Seed())

	skills, err := db.SkillRepo().FindAll(ListOptions{})
	require.NoError(t, err)
	assert.Len(t, skills, 15)

	projects, err := db.ProjectRepo().FindAll(ListOptions{})
	require.NoError(t, err)
	assert.Len(t, projects, 5)

	featured := 0
	for _, project := range projects {
		assert.NotEmpty(t, project.Slug)
		if project.Featured {
			featured++
		}
	}
	assert.Equal(t, 3, featured)
}

func TestSeedIsRepeatable(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Seed())
	require.NoError(t, db.Seed())

	skills, err := db.SkillRepo().FindAll(ListOptions{})
	require.NoError(t, err)
	assert.Len(t, skills, 15)

	projects, err := db.ProjectRepo().FindAll(ListOptions{})
	require.NoError(t, err)
	assert.Len(t, projects, 5)
}

func TestSeedLeavesContactsAlone(t *testing.T) {
	db := newTestDB(t)

	contact := &models.Contact{Name: "Ada", Email: "ada@example.com", Subject: "s", Message: "m"}
	require.NoError(t, db.ContactRepo().Add(contact))

	require.NoError(t, db.Seed())

	contacts, err := db.ContactRepo().FindAll(ListOptions{})
	require.NoError(t, err)
	assert.Len(t, contacts, 1)
}
