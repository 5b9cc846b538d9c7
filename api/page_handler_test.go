package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FijacksProp/portfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeBoundsFeaturedProjectsAndSkills(t *testing.T) {
	db := newTestDatabase(t)
	handler := newPageHandler(testRenderer(), db.ProjectRepo(), db.SkillRepo())

	for i := 0; i < 5; i++ {
		require.NoError(t, db.ProjectRepo().Add(&models.Project{
			Title:    "Featured " + string(rune('A'+i)),
			Featured: true,
		}))
	}
	require.NoError(t, db.ProjectRepo().Add(&models.Project{Title: "Plain"}))

	for i := 0; i < 10; i++ {
		require.NoError(t, db.SkillRepo().Add(&models.Skill{
			Name:     "Skill",
			Category: models.SkillCategoryBackend,
			Order:    i,
		}))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.home().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Template string `json:"template"`
		Data     struct {
			FeaturedProjects []models.Project `json:"featured_projects"`
			Skills           []models.Skill   `json:"skills"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	assert.Equal(t, "home", payload.Template)
	assert.Len(t, payload.Data.FeaturedProjects, 3)
	assert.Len(t, payload.Data.Skills, 8)
	for _, project := range payload.Data.FeaturedProjects {
		assert.True(t, project.Featured)
	}
}

func TestHomeWithEmptyStore(t *testing.T) {
	db := newTestDatabase(t)
	handler := newPageHandler(testRenderer(), db.ProjectRepo(), db.SkillRepo())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.home().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAboutListsAllSkillsGrouped(t *testing.T) {
	db := newTestDatabase(t)
	handler := newPageHandler(testRenderer(), db.ProjectRepo(), db.SkillRepo())

	require.NoError(t, db.SkillRepo().Add(&models.Skill{Name: "React", Category: models.SkillCategoryFrontend, Order: 1}))
	require.NoError(t, db.SkillRepo().Add(&models.Skill{Name: "Go", Category: models.SkillCategoryBackend, Order: 2}))
	require.NoError(t, db.SkillRepo().Add(&models.Skill{Name: "Gin", Category: models.SkillCategoryBackend, Order: 1}))

	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	rec := httptest.NewRecorder()
	handler.about().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Template string `json:"template"`
		Data     struct {
			Skills []models.Skill `json:"skills"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	assert.Equal(t, "about", payload.Template)
	require.Len(t, payload.Data.Skills, 3)
	assert.Equal(t, "Gin", payload.Data.Skills[0].Name)
	assert.Equal(t, "Go", payload.Data.Skills[1].Name)
	assert.Equal(t, "React", payload.Data.Skills[2].Name)
}

func TestProjectsListsEverythingFeaturedFirst(t *testing.T) {
	db := newTestDatabase(t)
	handler := newPageHandler(testRenderer(), db.ProjectRepo(), db.SkillRepo())

	require.NoError(t, db.ProjectRepo().Add(&models.Project{Title: "Plain"}))
	require.NoError(t, db.ProjectRepo().Add(&models.Project{Title: "Star", Featured: true}))

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	rec := httptest.NewRecorder()
	handler.projects().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Data struct {
			Projects []models.Project `json:"projects"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	require.Len(t, payload.Data.Projects, 2)
	assert.Equal(t, "Star", payload.Data.Projects[0].Title)
	assert.Equal(t, "Plain", payload.Data.Projects[1].Title)
}
