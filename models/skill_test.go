package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillCategoryLabels(t *testing.T) {
	assert.Equal(t, "Frontend Development", SkillCategoryFrontend.Label())
	assert.Equal(t, "Backend Development", SkillCategoryBackend.Label())
	assert.Equal(t, "Database & Tools", SkillCategoryDatabase.Label())
	assert.Equal(t, "Expanding Ecosystem", SkillCategoryExpanding.Label())
}

func TestSkillCategoryValid(t *testing.T) {
	assert.True(t, SkillCategoryDatabase.Valid())
	assert.False(t, SkillCategory("devops").Valid())
	assert.False(t, SkillCategory("").Valid())
}
