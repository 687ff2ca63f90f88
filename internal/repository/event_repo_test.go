package repository

import (
	"testing"

	"spandan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func sampleEvent(slug string) *models.Event {
	return &models.Event{
		Title:     "Blood Donation Camp",
		Category:  "BLOOD_DONATION",
		Date:      "14 June 2024",
		Month:     "June",
		Year:      2024,
		Summary:   "Annual camp with the district blood bank.",
		Slug:      slug,
		Published: true,
		Metrics: []models.EventMetric{
			{Label: "82 donors", SortOrder: 0},
			{Label: "76 units collected", SortOrder: 1},
		},
		Detail: &models.EventDetail{
			Location:    "Main auditorium",
			Duration:    "6 hours",
			Objective:   "Collect blood for the district bank",
			Preparation: datatypes.NewJSONSlice([]string{"booked venue", "donor signup drive"}),
			Process:     datatypes.NewJSONSlice([]string{"registration", "screening", "donation"}),
			Partners:    datatypes.NewJSONSlice([]string{"District Blood Bank"}),
			Metrics: []models.EventDetailMetric{
				{Key: "units_collected", Value: "76"},
				{Key: "donors", Value: "82"},
			},
		},
	}
}

func TestEventCreateAndGet(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))

	e := sampleEvent("blood-donation-camp-2024")
	require.NoError(t, repo.Create(e))
	require.NotZero(t, e.ID)

	got, err := repo.GetByID(e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Blood Donation Camp", got.Title)
	require.Len(t, got.Metrics, 2)
	assert.Equal(t, "82 donors", got.Metrics[0].Label)
	require.NotNil(t, got.Detail)
	assert.Equal(t, []string{"registration", "screening", "donation"}, []string(got.Detail.Process))
	assert.Len(t, got.Detail.Metrics, 2)

	bySlug, err := repo.GetBySlug("blood-donation-camp-2024", true)
	require.NoError(t, err)
	assert.Equal(t, e.ID, bySlug.ID)
}

func TestEventGetBySlugRespectsPublished(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))

	e := sampleEvent("draft-camp")
	e.Published = false
	require.NoError(t, repo.Create(e))

	_, err := repo.GetBySlug("draft-camp", true)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	got, err := repo.GetBySlug("draft-camp", false)
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)
}

func TestEventUpdateReplacesChildren(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))

	e := sampleEvent("village-camp")
	require.NoError(t, repo.Create(e))

	updated := sampleEvent("village-camp")
	updated.ID = e.ID
	updated.Title = "Village Health Camp"
	updated.Metrics = []models.EventMetric{{Label: "300 villagers screened", SortOrder: 0}}
	updated.Detail.Metrics = []models.EventDetailMetric{{Key: "villages", Value: "4"}}
	require.NoError(t, repo.Update(updated))

	got, err := repo.GetByID(e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Village Health Camp", got.Title)
	require.Len(t, got.Metrics, 1)
	assert.Equal(t, "300 villagers screened", got.Metrics[0].Label)
	require.NotNil(t, got.Detail)
	require.Len(t, got.Detail.Metrics, 1)
	assert.Equal(t, "villages", got.Detail.Metrics[0].Key)
}

func TestEventUpdatePreservesCreatedAt(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))

	e := sampleEvent("keep-created-at")
	require.NoError(t, repo.Create(e))

	before, err := repo.GetByID(e.ID)
	require.NoError(t, err)
	require.False(t, before.CreatedAt.IsZero())

	// handlers build update models from the request, so CreatedAt comes in zero
	updated := sampleEvent("keep-created-at")
	updated.ID = e.ID
	require.True(t, updated.CreatedAt.IsZero())
	require.NoError(t, repo.Update(updated))

	after, err := repo.GetByID(e.ID)
	require.NoError(t, err)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
}

func TestEventUpdateToNoChildrenLeavesNone(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)

	e := sampleEvent("short-event")
	require.NoError(t, repo.Create(e))

	updated := &models.Event{
		ID:       e.ID,
		Title:    "Short Event",
		Category: "SHORT_EVENT",
		Year:     2024,
		Slug:     "short-event",
	}
	require.NoError(t, repo.Update(updated))

	got, err := repo.GetByID(e.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Metrics)
	assert.Nil(t, got.Detail)

	var metricRows, detailRows, detailMetricRows int64
	db.Model(&models.EventMetric{}).Where("event_id = ?", e.ID).Count(&metricRows)
	db.Model(&models.EventDetail{}).Where("event_id = ?", e.ID).Count(&detailRows)
	db.Model(&models.EventDetailMetric{}).Count(&detailMetricRows)
	assert.Zero(t, metricRows)
	assert.Zero(t, detailRows)
	assert.Zero(t, detailMetricRows)
}

func TestEventDeleteRemovesChildren(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)

	e := sampleEvent("to-delete")
	require.NoError(t, repo.Create(e))
	require.NoError(t, repo.Delete(e.ID))

	_, err := repo.GetByID(e.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var metricRows, detailRows int64
	db.Model(&models.EventMetric{}).Count(&metricRows)
	db.Model(&models.EventDetail{}).Count(&detailRows)
	assert.Zero(t, metricRows)
	assert.Zero(t, detailRows)
}

func TestEventDeleteMissing(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))
	assert.ErrorIs(t, repo.Delete(999), gorm.ErrRecordNotFound)
}

func TestEventSlugExists(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))

	e := sampleEvent("unique-slug")
	require.NoError(t, repo.Create(e))

	taken, err := repo.SlugExists("unique-slug", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	// the event itself is excluded when updating
	taken, err = repo.SlugExists("unique-slug", e.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.SlugExists("other-slug", 0)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestEventListFilters(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))

	a := sampleEvent("camp-2023")
	a.Year = 2023
	a.Metrics = nil
	a.Detail = nil
	require.NoError(t, repo.Create(a))

	b := sampleEvent("camp-2024")
	b.Metrics = nil
	b.Detail = nil
	require.NoError(t, repo.Create(b))

	c := sampleEvent("draft-2024")
	c.Published = false
	c.Metrics = nil
	c.Detail = nil
	require.NoError(t, repo.Create(c))

	all, err := repo.List(EventFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	// newest year first
	assert.Equal(t, 2024, all[0].Year)

	published := true
	got, err := repo.List(EventFilter{Published: &published})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.List(EventFilter{Year: 2023})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "camp-2023", got[0].Slug)
}
