package driveimg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFileID(t *testing.T) {
	const id = "1AbCdEfGhIjKlMnOpQrStUvWxYz12345"
	tests := []struct {
		name string
		link string
		want string
	}{
		{"file share link", "https://drive.google.com/file/d/" + id + "/view?usp=sharing", id},
		{"file link without suffix", "https://drive.google.com/file/d/" + id, id},
		{"open link", "https://drive.google.com/open?id=" + id, id},
		{"uc export link", "https://drive.google.com/uc?id=" + id + "&export=view", id},
		{"uc link id not first", "https://drive.google.com/uc?export=view&id=" + id, id},
		{"thumbnail link", "https://drive.google.com/thumbnail?id=" + id, id},
		{"bare id", id, id},
		{"not a drive link", "https://example.com/image.png", ""},
		{"id too short", "abc123", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractFileID(tt.link))
		})
	}
}

func TestResolve(t *testing.T) {
	const id = "1AbCdEfGhIjKlMnOpQrStUvWxYz12345"
	ref, err := Resolve("https://drive.google.com/file/d/" + id + "/view?usp=sharing")
	require.NoError(t, err)
	assert.Equal(t, id, ref.FileID)
	assert.Equal(t, "https://lh3.googleusercontent.com/d/"+id, ref.ImageURL)
	assert.Equal(t, "https://drive.google.com/thumbnail?id="+id+"&sz=w400", ref.ThumbnailURL)
}

func TestResolveRejectsGarbage(t *testing.T) {
	for _, link := range []string{"", "not a link", "https://photos.google.com/share/abc"} {
		_, err := Resolve(link)
		assert.ErrorIs(t, err, ErrInvalidReference, link)
	}
}
