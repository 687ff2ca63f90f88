package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Blood Donation Camp", "blood-donation-camp"},
		{"already a slug", "village-camp-2024", "village-camp-2024"},
		{"uppercase and digits", "Tech4Good 2023", "tech4good-2023"},
		{"accents stripped", "Café Santé", "cafe-sante"},
		{"punctuation removed", "Health Check-up: Phase #2!", "health-check-up-phase-2"},
		{"multiple spaces collapse", "Annual   Donation  Drive", "annual-donation-drive"},
		{"leading and trailing junk", "  --Hello World--  ", "hello-world"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"a", "blood-camp", "event-2024", "x1-y2-z3"}
	for _, s := range valid {
		assert.True(t, IsValidSlug(s), s)
	}
	invalid := []string{"", "-leading", "trailing-", "double--hyphen", "Upper", "with space", "acçent"}
	for _, s := range invalid {
		assert.False(t, IsValidSlug(s), s)
	}
}

func TestSlugifyProducesValidSlug(t *testing.T) {
	inputs := []string{"Blood Donation Camp", "Café Santé", "  Annual   Drive  ", "Tech4Good 2023"}
	for _, in := range inputs {
		s := Slugify(in)
		if s != "" {
			assert.True(t, IsValidSlug(s), "Slugify(%q) = %q", in, s)
		}
	}
}
