package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSlug(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "Contact", "contact"},
		{"spaces to underscore", "Contact Us", "contact_us"},
		{"runs collapse", "Contact -- Us!!", "contact_us"},
		{"leading and trailing stripped", "  Hello World  ", "hello_world"},
		{"digits kept", "Survey 2024", "survey_2024"},
		{"only symbols", "!!!", ""},
		{"empty", "", ""},
		{"mixed punctuation", "What's your name?", "what_s_your_name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DeriveSlug(tc.input))
		})
	}
}

func TestDeriveSlug_Idempotent(t *testing.T) {
	slug := DeriveSlug("Customer Feedback Form")
	assert.Equal(t, slug, DeriveSlug(slug))
}
