package repository

import (
	"testing"
	"time"

	"spandan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func photo(title, category string, year int, date string, published bool) *models.GalleryPhoto {
	p := &models.GalleryPhoto{
		Title:        title,
		DriveFileID:  "1AbCdEfGhIjKlMnOpQrSt",
		ImageURL:     "https://lh3.googleusercontent.com/d/1AbCdEfGhIjKlMnOpQrSt",
		ThumbnailURL: "https://drive.google.com/thumbnail?id=1AbCdEfGhIjKlMnOpQrSt&sz=w400",
		Category:     category,
		Year:         year,
		Published:    published,
	}
	if date != "" {
		d, _ := time.Parse("2006-01-02", date)
		p.PhotoDate = &d
	}
	return p
}

func TestGalleryListReadsAsTimeline(t *testing.T) {
	repo := NewGalleryRepository(newTestDB(t))

	require.NoError(t, repo.Create(photo("later", "EVENT", 2024, "2024-06-14", true)))
	require.NoError(t, repo.Create(photo("earlier", "EVENT", 2024, "2024-01-05", true)))
	require.NoError(t, repo.Create(photo("middle", "EVENT", 2024, "2024-03-20", true)))

	got, err := repo.List(GalleryFilter{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "earlier", got[0].Title)
	assert.Equal(t, "middle", got[1].Title)
	assert.Equal(t, "later", got[2].Title)
}

func TestGalleryListFilters(t *testing.T) {
	repo := NewGalleryRepository(newTestDB(t))

	require.NoError(t, repo.Create(photo("a", "EVENT", 2023, "2023-02-01", true)))
	require.NoError(t, repo.Create(photo("b", "TEAM", 2024, "2024-02-01", true)))
	require.NoError(t, repo.Create(photo("c", "EVENT", 2024, "2024-05-01", false)))

	published := true
	got, err := repo.List(GalleryFilter{Published: &published})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.List(GalleryFilter{Category: "EVENT", Year: 2024})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].Title)
}

func TestGalleryUpdateCanClearLink(t *testing.T) {
	repo := NewGalleryRepository(newTestDB(t))

	p := photo("linked", "EVENT", 2024, "", true)
	linked := uint(7)
	p.LinkedType = "EVENT"
	p.LinkedID = &linked
	p.LinkedName = "Blood Donation Camp"
	require.NoError(t, repo.Create(p))

	p.LinkedType = ""
	p.LinkedID = nil
	p.LinkedName = ""
	require.NoError(t, repo.Update(p))

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Empty(t, got.LinkedType)
	assert.Nil(t, got.LinkedID)
}
