package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/budgie/internal/user"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Lowercase", input: "asha rao", want: "Asha Rao"},
		{name: "SurroundingSpace", input: "  asha rao ", want: "Asha Rao"},
		{name: "AlreadyNormalized", input: "Asha Rao", want: "Asha Rao"},
		{name: "SingleWord", input: "asha", want: "Asha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, user.Normalize(tt.input))
		})
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "SpacesToUnderscores", input: "Asha Rao", want: "asha_rao"},
		{name: "SurroundingSpace", input: "  Asha Rao ", want: "asha_rao"},
		{name: "SingleWord", input: "Asha", want: "asha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, user.Slug(tt.input))
		})
	}
}

func TestNormalizeAndSlugAgree(t *testing.T) {
	// The slug of a normalized name must match the slug of the raw input, so
	// a user reaches the same file however they type their name.
	assert.Equal(t, user.Slug("aShA rAo"), user.Slug(user.Normalize("aShA rAo")))
}
