package repository

import (
	"testing"

	"spandan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func intp(v int) *int { return &v }

func TestTeamUpdateCanClearYear(t *testing.T) {
	repo := NewTeamRepository(newTestDB(t))

	m := &models.TeamMember{
		Name:      "Asha Rao",
		Role:      "Coordinator",
		Category:  "CORE_MEMBER",
		Year:      intp(2024),
		Published: true,
	}
	require.NoError(t, repo.Create(m))

	// promoted to advisor, year becomes nil and must actually persist as NULL
	m.Category = "ADVISOR"
	m.Year = nil
	require.NoError(t, repo.Update(m))

	got, err := repo.GetByID(m.ID)
	require.NoError(t, err)
	assert.Equal(t, "ADVISOR", got.Category)
	assert.Nil(t, got.Year)
}

func TestTeamListOrdering(t *testing.T) {
	repo := NewTeamRepository(newTestDB(t))

	members := []*models.TeamMember{
		{Name: "B", Category: "COORDINATION", Year: intp(2024), SortOrder: 1, Published: true},
		{Name: "A", Category: "CORE_MEMBER", Year: intp(2024), SortOrder: 2, Published: true},
		{Name: "C", Category: "CORE_MEMBER", Year: intp(2024), SortOrder: 1, Published: true},
		{Name: "D", Category: "ADVISOR", Published: false},
	}
	for _, m := range members {
		require.NoError(t, repo.Create(m))
	}

	published := true
	got, err := repo.List(TeamFilter{Published: &published})
	require.NoError(t, err)
	require.Len(t, got, 3)
	// category then sort order
	assert.Equal(t, "B", got[0].Name)
	assert.Equal(t, "C", got[1].Name)
	assert.Equal(t, "A", got[2].Name)

	got, err = repo.List(TeamFilter{Category: "CORE_MEMBER"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestTeamDeleteMissing(t *testing.T) {
	repo := NewTeamRepository(newTestDB(t))
	assert.ErrorIs(t, repo.Delete(42), gorm.ErrRecordNotFound)
}
