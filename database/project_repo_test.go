package database

import (
	"testing"
	"time"

	"github.com/FijacksProp/portfolio/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestAddDerivesSlugFromTitle(t *testing.T) {
	repo := newTestDB(t).ProjectRepo()

	project := &models.Project{Title: "My Cool App!"}
	require.NoError(t, repo.Add(project))

	assert.Equal(t, "my-cool-app", project.Slug)
}

func TestAddSuffixesCollidingSlugs(t *testing.T) {
	repo := newTestDB(t).ProjectRepo()

	first := &models.Project{Title: "My Cool App"}
	second := &models.Project{Title: "My: Cool? App"}
	third := &models.Project{Title: "my cool app"}

	require.NoError(t, repo.Add(first))
	require.NoError(t, repo.Add(second))
	require.NoError(t, repo.Add(third))

	assert.Equal(t, "my-cool-app", first.Slug)
	assert.Equal(t, "my-cool-app-1", second.Slug)
	assert.Equal(t, "my-cool-app-2", third.Slug)
}

func TestAddKeepsExplicitSlug(t *testing.T) {
	repo := newTestDB(t).ProjectRepo()

	project := &models.Project{Title: "My Cool App", Slug: "hand-picked"}
	require.NoError(t, repo.Add(project))

	assert.Equal(t, "hand-picked", project.Slug)
}

func TestAddRejectsExplicitDuplicateSlug(t *testing.T) {
	repo := newTestDB(t).ProjectRepo()

	require.NoError(t, repo.Add(&models.Project{Title: "First", Slug: "taken"}))

	err := repo.Add(&models.Project{Title: "Second", Slug: "taken"})
	require.Error(t, err)
	assert.True(t, isDuplicateKey(err))
}

func TestUpdateKeepsSlugWhenTitleChanges(t *testing.T) {
	repo := newTestDB(t).ProjectRepo()

	project := &models.Project{Title: "Original Title"}
	require.NoError(t, repo.Add(project))
	require.Equal(t, "original-title", project.Slug)

	project.Title = "Completely New Title"
	require.NoError(t, repo.Update(project))

	stored, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, "original-title", stored.Slug)
	assert.Equal(t, "Completely New Title", stored.Title)
}

func TestUpdateRederivesWhenSlugCleared(t *testing.T) {
	repo := newTestDB(t).ProjectRepo()

	project := &models.Project{Title: "Original Title"}
	require.NoError(t, repo.Add(project))

	project.Title = "Renamed Project"
	project.Slug = ""
	require.NoError(t, repo.Update(project))

	assert.Equal(t, "renamed-project", project.Slug)
}

func TestUpdateDoesNotCollideWithOwnSlug(t *testing.T) {
	repo := newTestDB(t).ProjectRepo()

	project := &models.Project{Title: "Stable Name"}
	require.NoError(t, repo.Add(project))

	// Clearing the slug without renaming must re-derive the same slug, not
	// append a suffix against the project's own row.
	project.Slug = ""
	require.NoError(t, repo.Update(project))

	assert.Equal(t, "stable-name", project.Slug)
}

func TestUpdateMissingProjectReturnsNotFound(t *testing.T) {
	repo := newTestDB(t).ProjectRepo()

	err := repo.Update(&models.Project{ID: uuid.New(), Title: "Ghost"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindAllFeaturedSortFirst(t *testing.T) {
	repo := newTestDB(t).ProjectRepo()

	require.NoError(t, repo.Add(&models.Project{Title: "Plain One", CompletionDate: date(2024, 5, 1)}))
	require.NoError(t, repo.Add(&models.Project{Title: "Star One", Featured: true, CompletionDate: date(2023, 1, 1)}))
	require.NoError(t, repo.Add(&models.Project{Title: "Plain Two", CompletionDate: date(2025, 2, 1)}))
	require.NoError(t, repo.Add(&models.Project{Title: "Star Two", Featured: true, CompletionDate: date(2024, 8, 1)}))

	projects, err := repo.FindAll(ListOptions{Order: DefaultProjectOrder})
	require.NoError(t, err)
	require.Len(t, projects, 4)

	// Every featured entry strictly precedes every non-featured entry,
	// then completion date descending within each group.
	assert.Equal(t, "Star Two", projects[0].Title)
	assert.Equal(t, "Star One", projects[1].Title)
	assert.Equal(t, "Plain Two", projects[2].Title)
	assert.Equal(t, "Plain One", projects[3].Title)
}

func TestFindFeaturedLimit(t *testing.T) {
	repo := newTestDB(t).ProjectRepo()

	for _, title := range []string{"A", "B", "C", "D"} {
		require.NoError(t, repo.Add(&models.Project{Title: title, Featured: true, CompletionDate: date(2024, 1, 1)}))
	}
	require.NoError(t, repo.Add(&models.Project{Title: "E", CompletionDate: date(2024, 1, 1)}))

	featured, err := repo.FindFeatured(ListOptions{Order: DefaultProjectOrder, Limit: 3})
	require.NoError(t, err)

	assert.Len(t, featured, 3)
	for _, project := range featured {
		assert.True(t, project.Featured)
	}
}

func TestFindBySlug(t *testing.T) {
	repo := newTestDB(t).ProjectRepo()

	project := &models.Project{Title: "Lookup Me"}
	require.NoError(t, repo.Add(project))

	found, err := repo.FindBySlug("lookup-me")
	require.NoError(t, err)
	assert.Equal(t, project.ID, found.ID)

	_, err = repo.FindBySlug("nope")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAddDefaultsEnums(t *testing.T) {
	repo := newTestDB(t).ProjectRepo()

	project := &models.Project{Title: "Defaults"}
	require.NoError(t, repo.Add(project))

	stored, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectTypeWebApp, stored.Type)
	assert.Equal(t, models.ProjectStatusCompleted, stored.Status)
	assert.False(t, stored.Featured)
}

func TestUpdateRefreshesUpdatedAt(t *testing.T) {
	repo := newTestDB(t).ProjectRepo()

	project := &models.Project{Title: "Timestamps"}
	require.NoError(t, repo.Add(project))
	firstUpdate := project.UpdatedAt

	time.Sleep(10 * time.Millisecond)
	project.Description = "now with a description"
	require.NoError(t, repo.Update(project))

	stored, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	assert.True(t, stored.UpdatedAt.After(firstUpdate))
	assert.Equal(t, project.CreatedAt.Unix(), stored.CreatedAt.Unix())
}
