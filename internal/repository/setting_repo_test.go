package repository

import (
	"testing"

	"spandan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingUpsertManyIsIdempotent(t *testing.T) {
	repo := NewSettingRepository(newTestDB(t))

	payload := []models.SiteSetting{
		{Key: "contact_email", Value: "hello@spandan.org", Category: "contact"},
		{Key: "instagram_handle", Value: "@spandan", Category: "social"},
	}
	require.NoError(t, repo.UpsertMany(payload))
	require.NoError(t, repo.UpsertMany([]models.SiteSetting{
		{Key: "contact_email", Value: "hello@spandan.org", Category: "contact"},
		{Key: "instagram_handle", Value: "@spandan", Category: "social"},
	}))

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSettingUpsertOverwritesValue(t *testing.T) {
	repo := NewSettingRepository(newTestDB(t))

	require.NoError(t, repo.UpsertMany([]models.SiteSetting{
		{Key: "contact_email", Value: "old@spandan.org", Category: "contact"},
	}))
	require.NoError(t, repo.UpsertMany([]models.SiteSetting{
		{Key: "contact_email", Value: "new@spandan.org", Category: "contact"},
	}))

	v, err := repo.Get("contact_email")
	require.NoError(t, err)
	assert.Equal(t, "new@spandan.org", v)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSettingGetByCategory(t *testing.T) {
	repo := NewSettingRepository(newTestDB(t))

	require.NoError(t, repo.UpsertMany([]models.SiteSetting{
		{Key: "contact_email", Value: "a", Category: "contact"},
		{Key: "contact_phone", Value: "b", Category: "contact"},
		{Key: "instagram_handle", Value: "c", Category: "social"},
	}))

	contact, err := repo.GetByCategory("contact")
	require.NoError(t, err)
	assert.Len(t, contact, 2)
}
