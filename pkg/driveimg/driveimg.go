// Package driveimg resolves Google Drive share links into direct image URLs.
// Resolution is pure string transformation; no network calls are made.
package driveimg

import (
	"errors"
	"fmt"
	"regexp"
)

var ErrInvalidReference = errors.New("not a recognizable Google Drive image reference")

// Share-link shapes seen in the wild:
//
//	https://drive.google.com/file/d/<id>/view?usp=sharing
//	https://drive.google.com/open?id=<id>
//	https://drive.google.com/uc?id=<id>&export=view
//	https://drive.google.com/thumbnail?id=<id>
//
// A bare file id is also accepted.
var (
	filePattern = regexp.MustCompile(`drive\.google\.com/file/d/([a-zA-Z0-9_-]{10,})`)
	idPattern   = regexp.MustCompile(`drive\.google\.com/(?:open|uc|thumbnail)\?(?:[^#]*&)?id=([a-zA-Z0-9_-]{10,})`)
	barePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{10,}$`)
)

const thumbnailWidth = 400

type Reference struct {
	FileID       string
	ImageURL     string
	ThumbnailURL string
}

// Resolve extracts the stable file id from a share link and templates the
// full-resolution and thumbnail URLs. Validity means "an id was extracted".
func Resolve(shareLink string) (*Reference, error) {
	id := ExtractFileID(shareLink)
	if id == "" {
		return nil, ErrInvalidReference
	}
	return &Reference{
		FileID:       id,
		ImageURL:     fmt.Sprintf("https://lh3.googleusercontent.com/d/%s", id),
		ThumbnailURL: fmt.Sprintf("https://drive.google.com/thumbnail?id=%s&sz=w%d", id, thumbnailWidth),
	}, nil
}

// ExtractFileID returns the Drive file id embedded in the link, or "".
func ExtractFileID(shareLink string) string {
	if m := filePattern.FindStringSubmatch(shareLink); m != nil {
		return m[1]
	}
	if m := idPattern.FindStringSubmatch(shareLink); m != nil {
		return m[1]
	}
	if barePattern.MatchString(shareLink) {
		return shareLink
	}
	return ""
}
