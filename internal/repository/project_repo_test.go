package repository

import (
	"testing"

	"spandan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProject(slug string) *models.TechProject {
	return &models.TechProject{
		Title:     "Blood Camp Registration Portal",
		Status:    "ACTIVE",
		Year:      "2023-2024",
		Problem:   "Paper donor registration slowed down camps.",
		Slug:      slug,
		Published: true,
		Constraints: []models.ProjectConstraint{
			{Text: "must work offline at the venue", SortOrder: 0},
		},
		Technologies: []models.ProjectTechnology{
			{Name: "Go"}, {Name: "SQLite"},
		},
		Metrics: []models.ProjectMetric{
			{Key: "registrations", Value: "450"},
		},
	}
}

func TestProjectUpdateReplacesChildren(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))

	p := sampleProject("registration-portal")
	require.NoError(t, repo.Create(p))

	updated := sampleProject("registration-portal")
	updated.ID = p.ID
	updated.Technologies = []models.ProjectTechnology{{Name: "Go"}}
	updated.Metrics = nil
	require.NoError(t, repo.Update(updated))

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	require.Len(t, got.Technologies, 1)
	assert.Empty(t, got.Metrics)
	assert.Len(t, got.Constraints, 1)
}

func TestProjectUpdatePreservesCreatedAt(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))

	p := sampleProject("keep-created-at")
	require.NoError(t, repo.Create(p))

	before, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	require.False(t, before.CreatedAt.IsZero())

	updated := sampleProject("keep-created-at")
	updated.ID = p.ID
	require.True(t, updated.CreatedAt.IsZero())
	require.NoError(t, repo.Update(updated))

	after, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
}

func TestProjectSlugExists(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))

	p := sampleProject("taken")
	require.NoError(t, repo.Create(p))

	taken, err := repo.SlugExists("taken", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.SlugExists("taken", p.ID)
	require.NoError(t, err)
	assert.False(t, taken)
}
