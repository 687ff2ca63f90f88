package repository

import (
	"testing"

	"spandan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImpactYearExists(t *testing.T) {
	repo := NewImpactRepository(newTestDB(t))

	y := &models.ImpactYear{Year: 2024, BloodDonationCamps: 2, BloodDonors: 164}
	require.NoError(t, repo.CreateYear(y))

	exists, err := repo.YearExists(2024, 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.YearExists(2024, y.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.YearExists(2023, 0)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestImpactListYearsNewestFirst(t *testing.T) {
	repo := NewImpactRepository(newTestDB(t))

	require.NoError(t, repo.CreateYear(&models.ImpactYear{Year: 2022}))
	require.NoError(t, repo.CreateYear(&models.ImpactYear{Year: 2024}))
	require.NoError(t, repo.CreateYear(&models.ImpactYear{Year: 2023}))

	years, err := repo.ListYears()
	require.NoError(t, err)
	require.Len(t, years, 3)
	assert.Equal(t, 2024, years[0].Year)
	assert.Equal(t, 2022, years[2].Year)
}

func TestImpactSummarySingleton(t *testing.T) {
	repo := NewImpactRepository(newTestDB(t))

	// never written: zero-valued, not an error
	s, err := repo.GetSummary()
	require.NoError(t, err)
	assert.Zero(t, s.TotalEvents)

	require.NoError(t, repo.UpsertSummary(&models.ImpactSummary{
		YearsActive:   5,
		TotalEvents:   48,
		PeopleReached: "12000+",
		Volunteers:    350,
	}))
	require.NoError(t, repo.UpsertSummary(&models.ImpactSummary{
		YearsActive:   6,
		TotalEvents:   57,
		PeopleReached: "15000+",
		Volunteers:    410,
	}))

	s, err = repo.GetSummary()
	require.NoError(t, err)
	assert.Equal(t, uint(1), s.ID)
	assert.Equal(t, 57, s.TotalEvents)
	assert.Equal(t, "15000+", s.PeopleReached)
}
